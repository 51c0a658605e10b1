package parser

import "github.com/kievzenit/amp/internal/lexer"

type Precedence int

const (
	LOWEST      Precedence = iota
	EQUALS                 // == !=
	LESSGREATER            // < > <= >=
	SUM                    // + -
	PRODUCT                // * /
	PREFIX                 // -x !x
	CALL                   // f(x)
)

// bindingPowerLookup is the only place operator strength is defined.
// Every binary operator is left-associative.
var bindingPowerLookup = map[lexer.TokenKind]Precedence{
	lexer.EQ:       EQUALS,
	lexer.NEQ:      EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.LEQ:      LESSGREATER,
	lexer.GEQ:      LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.LPAREN:   CALL,
}

func precedenceOf(kind lexer.TokenKind) (Precedence, bool) {
	precedence, ok := bindingPowerLookup[kind]
	return precedence, ok
}
