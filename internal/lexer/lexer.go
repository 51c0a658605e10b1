package lexer

import (
	"errors"
	"strconv"
)

// Lexer turns a byte tape into tokens one call at a time.
type Lexer struct {
	cursor *Cursor
}

func NewLexer(buf []byte) *Lexer {
	// The trailing blank keeps the last real byte from being the cursor's
	// clamp position, so every token ends on a byte the cursor can step onto.
	tape := make([]byte, len(buf)+1)
	copy(tape, buf)
	tape[len(buf)] = ' '

	return &Lexer{
		cursor: NewCursor(tape),
	}
}

// NextToken scans one token and moves past it. At the end of input it keeps
// returning EOF. The only error is an integer literal that overflows u64.
func (l *Lexer) NextToken() (Token, error) {
	l.cursor.SkipWhitespace()

	switch ch := l.cursor.Current(); {
	case isWhitespace(ch):
		return Token{Kind: EOF}, nil
	case isDigit(ch):
		return l.processNumber()
	case isIdentifier(ch):
		return l.processIdentifier(), nil
	}

	return l.processPunctuation(), nil
}

// PeekToken scans the next token and puts the cursor back where it was.
func (l *Lexer) PeekToken() (Token, error) {
	l.cursor.Save()
	defer l.cursor.Restore()

	return l.NextToken()
}

func (l *Lexer) Rewind(n int) {
	l.cursor.Rewind(n)
}

func (l *Lexer) Pos() int {
	return l.cursor.Pos()
}

// Tokenize scans the whole input. The returned slice ends with EOF unless a
// scan error stopped it early.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for {
		token, err := l.NextToken()
		if err != nil {
			return tokens, err
		}

		tokens = append(tokens, token)
		if token.Kind == EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) processNumber() (Token, error) {
	start := l.cursor.Pos()
	for {
		ch, ok := l.cursor.Advance()
		if !ok || !isDigit(ch) {
			break
		}
	}
	literal := string(l.cursor.buf[start:l.cursor.Pos()])

	value, err := strconv.ParseUint(literal, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, &IntegerOverflowError{Literal: literal}
		}

		return Token{}, err
	}

	return Token{
		Kind:  INT,
		Value: literal,
		Int:   value,
	}, nil
}

// processIdentifier stops at digits: "x1" scans as IDENT(x) INT(1).
func (l *Lexer) processIdentifier() Token {
	start := l.cursor.Pos()
	for {
		ch, ok := l.cursor.Advance()
		if !ok || !isIdentifier(ch) {
			break
		}
	}
	identifier := string(l.cursor.buf[start:l.cursor.Pos()])

	if kind, ok := keywords[identifier]; ok {
		return Token{Kind: kind}
	}

	return Token{
		Kind:  IDENT,
		Value: identifier,
	}
}

func (l *Lexer) processPunctuation() Token {
	ch := l.cursor.Current()

	switch ch {
	case '!':
		return l.processDoubleOrSingle(NEQ, XMARK)
	case '<':
		return l.processDoubleOrSingle(LEQ, LT)
	case '>':
		return l.processDoubleOrSingle(GEQ, GT)
	case '=':
		return l.processDoubleOrSingle(EQ, ASSIGN)
	}

	l.cursor.Skip(1)

	switch ch {
	case '{':
		return Token{Kind: LBRACE}
	case '}':
		return Token{Kind: RBRACE}
	case '[':
		return Token{Kind: LBRACKET}
	case ']':
		return Token{Kind: RBRACKET}
	case '(':
		return Token{Kind: LPAREN}
	case ')':
		return Token{Kind: RPAREN}
	case ',':
		return Token{Kind: COMMA}
	case ';':
		return Token{Kind: SEMICOLON}
	case '+':
		return Token{Kind: PLUS}
	case '-':
		return Token{Kind: MINUS}
	case '*':
		return Token{Kind: ASTERISK}
	case '/':
		return Token{Kind: SLASH}
	}

	return Token{
		Kind:  INVALID,
		Value: string([]byte{ch}),
	}
}

// processDoubleOrSingle handles the operators whose two-byte form ends in '='.
func (l *Lexer) processDoubleOrSingle(double, single TokenKind) Token {
	if next, ok := l.cursor.PeekNext(); ok && next == '=' {
		l.cursor.Skip(2)
		return Token{Kind: double}
	}

	l.cursor.Skip(1)
	return Token{Kind: single}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentifier(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
