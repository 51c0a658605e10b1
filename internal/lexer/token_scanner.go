package lexer

// TokenScanner is what the parser needs from a scanner.
type TokenScanner interface {
	NextToken() (Token, error)
}

var _ TokenScanner = (*Lexer)(nil)
