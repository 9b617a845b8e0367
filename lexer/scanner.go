// Package lexer is a lexical analyzer for a subset of YASL. The Scanner
// uses a (Mealy) state machine to extract the next available token from the
// input each time Next is called: outputs (character consumption, token
// emission, diagnostics) happen on the transitions, and a single buffered
// look-ahead character is enough to decide every transition.
package lexer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// state enumerates the positions of the scanning machine. Having a closed
// enum with one switch arm per state keeps each transition independently
// testable, as opposed to spreading the logic over nested conditionals.
type state int

const (
	stateStart       state = iota // looking for the start of a token
	stateZero                     // just consumed a lone 0
	stateNumber                   // accumulating a non-zero numeric literal
	stateWord                     // accumulating an identifier or keyword
	stateOpPunct                  // single-char operator/punctuation consumed
	stateSlash                    // consumed /, deciding which comment kind
	stateComment                  // inside /* */, no pending star
	stateCommentStar              // just saw * inside /* */
	stateLineComment              // inside //
)

// Scanner turns a character stream into a token stream. It owns its Source
// exclusively; a Scanner and the tokens it produces are not safe for
// concurrent use, but the tokens themselves are plain values.
type Scanner struct {
	source   *Source
	reporter Reporter

	keywords    map[string]TokenType
	opsAndPunct map[rune]TokenType
}

// New constructs a Scanner reading from in, with diagnostics written to
// stderr. in will generally be a file or stdin, though for testing it may
// also be simply a strings.Reader.
func New(file FileRef, in io.Reader) *Scanner {
	return NewWithReporter(file, in, WriteReporter{W: os.Stderr})
}

// NewWithReporter is New with an injected diagnostics sink.
func NewWithReporter(file FileRef, in io.Reader, reporter Reporter) *Scanner {
	return &Scanner{
		source:   NewSource(file, in),
		reporter: reporter,
		keywords: map[string]TokenType{
			"program": ProgramToken,
			"val":     ValToken,
			"begin":   BeginToken,
			"print":   PrintToken,
			"end":     EndToken,
			"div":     DivToken,
			"mod":     ModToken,
		},
		opsAndPunct: map[rune]TokenType{
			'+': PlusToken,
			'-': MinusToken,
			'*': StarToken,
			'=': AssignToken,
			';': SemicolonToken,
			'.': PeriodToken,
		},
	}
}

func (s *Scanner) report(pos Pos, format string, args ...interface{}) {
	s.reporter.Report(Error{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Next extracts the next available token. Malformed input produces a
// diagnostic and scanning resumes, so Next always returns a token; once the
// input is exhausted it returns an EOFToken at the final position on every
// future call.
func (s *Scanner) Next() Token {
	src := s.source
	st := stateStart
	var lexeme strings.Builder
	var start Pos
	var opType TokenType

	for {
		switch st {
		case stateStart:
			switch {
			case src.AtEOF:
				return Token{Type: EOFToken, Pos: src.Pos()}
			case src.Current == '0':
				start = src.Pos()
				lexeme.WriteRune(src.Current)
				src.Advance()
				st = stateZero
			case unicode.IsDigit(src.Current):
				start = src.Pos()
				lexeme.WriteRune(src.Current)
				src.Advance()
				st = stateNumber
			case unicode.IsLetter(src.Current):
				start = src.Pos()
				lexeme.WriteRune(src.Current)
				src.Advance()
				st = stateWord
			case src.Current == '/':
				src.Advance()
				st = stateSlash
			case unicode.IsSpace(src.Current):
				src.Advance()
			default:
				if tt, ok := s.opsAndPunct[src.Current]; ok {
					start = src.Pos()
					opType = tt
					src.Advance()
					st = stateOpPunct
				} else {
					s.report(src.Pos(), "Illegal character: %c", src.Current)
					src.Advance()
				}
			}

		case stateZero:
			// A leading zero never accumulates further digits; 007 is three
			// separate number tokens.
			return Token{Type: NumberToken, Pos: start, Text: lexeme.String()}

		case stateNumber:
			if src.AtEOF || !unicode.IsDigit(src.Current) {
				return Token{Type: NumberToken, Pos: start, Text: lexeme.String()}
			}
			lexeme.WriteRune(src.Current)
			src.Advance()

		case stateWord:
			if src.AtEOF || !(unicode.IsLetter(src.Current) || unicode.IsDigit(src.Current)) {
				lex := lexeme.String()
				if tt, ok := s.keywords[lex]; ok {
					return Token{Type: tt, Pos: start}
				}
				return Token{Type: IdentifierToken, Pos: start, Text: lex}
			}
			lexeme.WriteRune(src.Current)
			src.Advance()

		case stateOpPunct:
			return Token{Type: opType, Pos: start}

		case stateSlash:
			switch {
			case src.AtEOF:
				s.report(src.Pos(), "Malformed comment: found end of input after /")
				st = stateStart
			case src.Current == '*':
				src.Advance()
				st = stateComment
			case src.Current == '/':
				src.Advance()
				st = stateLineComment
			default:
				// The offending character is deliberately not consumed;
				// stateStart reclassifies it, so /x still yields the
				// identifier x.
				s.report(src.Pos(), "Malformed comment: found %c after /", src.Current)
				st = stateStart
			}

		case stateComment:
			switch {
			case src.AtEOF:
				s.report(src.Pos(), "Unclosed comment at end of file")
				st = stateStart
			case src.Current == '*':
				src.Advance()
				st = stateCommentStar
			default:
				src.Advance()
			}

		case stateCommentStar:
			switch {
			case src.AtEOF:
				s.report(src.Pos(), "Unclosed comment at end of file")
				st = stateStart
			case src.Current == '/':
				src.Advance()
				st = stateStart
			case src.Current == '*':
				// maybe _this_ is the ending star; stay here
				src.Advance()
			default:
				src.Advance()
				st = stateComment
			}

		case stateLineComment:
			if src.AtEOF || src.Current == '\n' {
				// the newline is left for stateStart's whitespace handling
				st = stateStart
			} else {
				src.Advance()
			}
		}
	}
}

// Close releases the underlying input channel.
func (s *Scanner) Close() error {
	return s.source.Close()
}
