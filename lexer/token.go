package lexer

import "fmt"

// dedicated type for reference to file, in case we need to refactor this later..
type FileRef string

type Pos struct {
	File      FileRef
	Line, Col int
}

// Token is one classified unit of source text. Pos is the position of the
// token's first character. Text holds the lexeme for NumberToken and
// IdentifierToken only; every other type is fully described by Type.
type Token struct {
	Type TokenType
	Pos  Pos
	Text string
}

func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%d:%d %s(%s)", t.Pos.Line, t.Pos.Col, t.Type, t.Text)
	}
	return fmt.Sprintf("%d:%d %s", t.Pos.Line, t.Pos.Col, t.Type)
}

func (t Token) WithoutPos() Token {
	return Token{Type: t.Type, Text: t.Text}
}
