package lexer

type TokenType int

const (
	NumberToken TokenType = iota + 1
	IdentifierToken

	SemicolonToken
	PeriodToken

	PlusToken
	MinusToken
	StarToken
	AssignToken

	ProgramToken
	ValToken
	BeginToken
	PrintToken
	EndToken
	DivToken
	ModToken

	EOFToken
)

func (tt TokenType) GoString() string {
	return tokenToDescription[tt]
}

func (tt TokenType) String() string {
	return tokenToDescription[tt]
}

func init() {
	// make sure we panic if a description isn't declared
	for tt := NumberToken; tt != EOFToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("you have not updated tokenToDescription")
		}
	}
}

var tokenToDescription = map[TokenType]string{
	NumberToken:     "NumberToken",
	IdentifierToken: "IdentifierToken",

	SemicolonToken: "SemicolonToken",
	PeriodToken:    "PeriodToken",

	PlusToken:   "PlusToken",
	MinusToken:  "MinusToken",
	StarToken:   "StarToken",
	AssignToken: "AssignToken",

	// Keywords get their own token types; the scanner promotes an
	// identifier-shaped lexeme to one of these after the full word has
	// been accumulated, so `val` is ValToken but `valley` is an identifier.
	ProgramToken: "ProgramToken",
	ValToken:     "ValToken",
	BeginToken:   "BeginToken",
	PrintToken:   "PrintToken",
	EndToken:     "EndToken",
	DivToken:     "DivToken",
	ModToken:     "ModToken",

	EOFToken: "EOFToken",
}
