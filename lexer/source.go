package lexer

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Source provides the single character of look-ahead the Scanner needs.
// Current and AtEOF always describe the character that will be consumed
// next; Line and Col are its 1-based position. Once AtEOF is true it stays
// true and the position stops changing.
type Source struct {
	file    FileRef
	in      *bufio.Reader
	closer  io.Closer
	readErr error

	Current rune
	AtEOF   bool
	Line    int
	Col     int
}

// NewSource wraps in for look-ahead scanning. If in is also an io.Closer
// (typically an *os.File), Close will close it.
func NewSource(file FileRef, in io.Reader) *Source {
	s := &Source{
		file: file,
		in:   bufio.NewReader(in),
		Line: 1,
		Col:  1,
	}
	if c, ok := in.(io.Closer); ok {
		s.closer = c
	}
	s.read()
	return s
}

func (s *Source) read() {
	r, _, err := s.in.ReadRune()
	if err != nil {
		// A failed read other than EOF still ends the stream; the error is
		// remembered and surfaced from Close, since Advance cannot fail.
		if err != io.EOF && s.readErr == nil {
			s.readErr = err
		}
		s.AtEOF = true
		s.Current = 0
		return
	}
	s.Current = r
}

// Advance discards the current character and makes the following one
// current, updating Line and Col for the new character. At end of input it
// is a no-op.
func (s *Source) Advance() {
	if s.AtEOF {
		return
	}
	if s.Current == '\n' {
		s.Line++
		s.Col = 1
	} else {
		s.Col++
	}
	s.read()
}

// Pos is the position of the current look-ahead character (or, at end of
// input, the position just past the last character).
func (s *Source) Pos() Pos {
	return Pos{File: s.file, Line: s.Line, Col: s.Col}
}

// Close releases the underlying reader, if it is closable, and reports any
// read failure that was swallowed during scanning.
func (s *Source) Close() error {
	var closeErr error
	if s.closer != nil {
		closeErr = s.closer.Close()
	}
	if s.readErr != nil {
		return errors.Wrap(s.readErr, "reading input")
	}
	if closeErr != nil {
		return errors.Wrap(closeErr, "closing input")
	}
	return nil
}
