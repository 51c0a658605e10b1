package lexer

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota
	INVALID

	INT
	IDENT

	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /
	XMARK    // !

	EQ  // ==
	NEQ // !=
	LT  // <
	LEQ // <=
	GT  // >
	GEQ // >=

	LPAREN   // (
	LBRACKET // [
	LBRACE   // {

	RPAREN   // )
	RBRACKET // ]
	RBRACE   // }

	COMMA     // ,
	SEMICOLON // ;

	FN
	LET
	IF
	ELSE
	TRUE
	FALSE
	RETURN
)

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case INVALID:
		return "INVALID"
	case INT:
		return "INT"
	case IDENT:
		return "IDENT"
	case ASSIGN:
		return "ASSIGN"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case XMARK:
		return "XMARK"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case LT:
		return "LT"
	case LEQ:
		return "LEQ"
	case GT:
		return "GT"
	case GEQ:
		return "GEQ"
	case LPAREN:
		return "LPAREN"
	case LBRACKET:
		return "LBRACKET"
	case LBRACE:
		return "LBRACE"
	case RPAREN:
		return "RPAREN"
	case RBRACKET:
		return "RBRACKET"
	case RBRACE:
		return "RBRACE"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case FN:
		return "FN"
	case LET:
		return "LET"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case RETURN:
		return "RETURN"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(tk))
	}
}

// Symbol is the source spelling of a kind, or a short description for
// kinds whose text varies.
func (tk TokenKind) Symbol() string {
	if s, ok := symbols[tk]; ok {
		return s
	}

	return tk.String()
}

var symbols = map[TokenKind]string{
	EOF:       "end of input",
	INVALID:   "invalid character",
	INT:       "integer",
	IDENT:     "identifier",
	ASSIGN:    "=",
	PLUS:      "+",
	MINUS:     "-",
	ASTERISK:  "*",
	SLASH:     "/",
	XMARK:     "!",
	EQ:        "==",
	NEQ:       "!=",
	LT:        "<",
	LEQ:       "<=",
	GT:        ">",
	GEQ:       ">=",
	LPAREN:    "(",
	LBRACKET:  "[",
	LBRACE:    "{",
	RPAREN:    ")",
	RBRACKET:  "]",
	RBRACE:    "}",
	COMMA:     ",",
	SEMICOLON: ";",
	FN:        "fn",
	LET:       "let",
	IF:        "if",
	ELSE:      "else",
	TRUE:      "true",
	FALSE:     "false",
	RETURN:    "return",
}

var keywords = map[string]TokenKind{
	"fn":     FN,
	"let":    LET,
	"if":     IF,
	"else":   ELSE,
	"true":   TRUE,
	"false":  FALSE,
	"return": RETURN,
}

// Token is a comparable value; two tokens are equal when all fields are.
// Value holds the source text of INT, IDENT and INVALID tokens and is empty
// for every kind with a fixed spelling. Int holds the value of an INT token.
type Token struct {
	Kind  TokenKind
	Value string
	Int   uint64
}

func (t Token) hasActualValue() bool {
	switch t.Kind {
	case INT, IDENT, INVALID:
		return true
	}

	return false
}

func (t Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	if t.Kind == INVALID && len(t.Value) == 1 {
		return fmt.Sprintf("%s(%s)", t.Kind, escapeByte(t.Value[0]))
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

// escapeByte keeps printable ASCII as is and writes any other byte as \xNN.
func escapeByte(ch byte) string {
	if ch >= 0x20 && ch < 0x7f {
		return string([]byte{ch})
	}

	return fmt.Sprintf("\\x%02x", ch)
}

// Literal renders the token as it appeared in source.
func (t Token) Literal() string {
	switch t.Kind {
	case INT, IDENT:
		return t.Value
	case INVALID:
		return fmt.Sprintf("<invalid=%q>", t.Value)
	}

	return t.Kind.Symbol()
}
