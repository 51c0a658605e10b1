package parser

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/kievzenit/amp/internal/ast"
	"github.com/kievzenit/amp/internal/lexer"
)

type Option func(*Parser)

// WithLogger makes the parser trace every grammar step at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser holds one token of lookahead. A scan error travels with the token it
// was scanned for and is reported when that token becomes current.
// A Parser is good for a single Parse call.
type Parser struct {
	scanner lexer.TokenScanner
	logger  *slog.Logger

	curr    lexer.Token
	currErr error
	peek    lexer.Token
	peekErr error
}

func NewParser(scanner lexer.TokenScanner, opts ...Option) *Parser {
	p := &Parser{
		scanner: scanner,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.peek, p.peekErr = scanner.NextToken()
	return p
}

// Parse turns source text into its top-level statements.
func Parse(src string, opts ...Option) ([]ast.Stmt, error) {
	return NewParser(lexer.NewLexer([]byte(src)), opts...).Parse()
}

func (p *Parser) Parse() ([]ast.Stmt, error) {
	if err := p.read(); err != nil {
		return nil, err
	}

	stmts, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	// parseBlock leaves '}' and 'else' for an enclosing construct; at the top
	// level there is none.
	if err := p.expect(lexer.EOF); err != nil {
		return nil, err
	}

	return stmts, nil
}

func (p *Parser) parseBlock() (ast.Block, error) {
	p.trace("parseBlock")

	stmts := make(ast.Block, 0)
	for !p.isCurrAny(lexer.EOF, lexer.RBRACE, lexer.ELSE) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.curr.Kind {
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.SEMICOLON:
		return p.parseEmptyStmt()
	}

	return p.parseExprStmt()
}

func (p *Parser) parseLetStmt() (ast.Stmt, error) {
	p.trace("parseLetStmt")

	if err := p.consume(lexer.LET); err != nil {
		return failStmt(err)
	}

	if err := p.expect(lexer.IDENT); err != nil {
		return failStmt(err)
	}
	name := p.curr.Value
	if err := p.read(); err != nil {
		return failStmt(err)
	}

	if err := p.consume(lexer.ASSIGN); err != nil {
		return failStmt(err)
	}

	value, err := p.parseExpr(LOWEST, fmt.Sprintf("value of '%s'", name))
	if err != nil {
		return failStmt(err)
	}

	if err := p.consume(lexer.SEMICOLON); err != nil {
		return failStmt(err)
	}

	return &ast.LetStmt{
		Name:  name,
		Value: value,
	}, nil
}

func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	p.trace("parseReturnStmt")

	if err := p.consume(lexer.RETURN); err != nil {
		return failStmt(err)
	}

	value, err := p.parseExpr(LOWEST, "return value")
	if err != nil {
		return failStmt(err)
	}

	if err := p.consume(lexer.SEMICOLON); err != nil {
		return failStmt(err)
	}

	return &ast.ReturnStmt{
		Value: value,
	}, nil
}

func (p *Parser) parseEmptyStmt() (ast.Stmt, error) {
	if err := p.consume(lexer.SEMICOLON); err != nil {
		return failStmt(err)
	}

	return &ast.EmptyStmt{}, nil
}

// parseExprStmt accepts an optional ';' so that block-valued expressions such
// as if/else can stand alone.
func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	p.trace("parseExprStmt")

	expr, err := p.parseExpr(LOWEST, "statement")
	if err != nil {
		return failStmt(err)
	}

	if p.curr.Kind == lexer.SEMICOLON {
		if err := p.read(); err != nil {
			return failStmt(err)
		}
	}

	return &ast.ExprStmt{
		Expr: expr,
	}, nil
}

// parseExpr parses a primary term and then folds every following operator
// that binds tighter than precedence.
func (p *Parser) parseExpr(precedence Precedence, context string) (ast.Expr, error) {
	p.trace("parseExpr")

	left, err := p.parsePrimaryExpr(context)
	if err != nil {
		return left, err
	}

	return p.parseBinaryExpr(left, precedence)
}

func (p *Parser) parseBinaryExpr(left ast.Expr, precedence Precedence) (ast.Expr, error) {
	for {
		op := p.curr.Kind
		bindingPower, ok := precedenceOf(op)
		if !ok || bindingPower <= precedence {
			return left, nil
		}

		if op == lexer.LPAREN {
			args, err := p.parseCallArgs()
			if err != nil {
				return failExpr(err)
			}

			left = &ast.CallExpr{
				Func: left,
				Args: args,
			}
			continue
		}

		if err := p.read(); err != nil {
			return failExpr(err)
		}

		right, err := p.parseExpr(bindingPower, fmt.Sprintf("right operand of '%s'", op.Symbol()))
		if err != nil {
			return failExpr(err)
		}

		left = &ast.InfixExpr{
			Left:  left,
			Op:    op,
			Right: right,
		}
	}
}

func (p *Parser) parsePrimaryExpr(context string) (ast.Expr, error) {
	p.trace("parsePrimaryExpr")

	switch p.curr.Kind {
	case lexer.INT:
		return p.parseIntExpr()
	case lexer.TRUE, lexer.FALSE:
		return p.parseBoolExpr()
	case lexer.IDENT:
		return p.parseIdentExpr()
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.XMARK, lexer.MINUS:
		return p.parsePrefixExpr()
	case lexer.IF:
		return p.parseIfExpr()
	case lexer.FN:
		return p.parseFuncExpr()
	}

	return failExpr(&MissingExpressionError{
		Context: context,
		Found:   p.curr,
	})
}

func (p *Parser) parseIntExpr() (ast.Expr, error) {
	value := p.curr.Int
	if err := p.consume(lexer.INT); err != nil {
		return failExpr(err)
	}

	return &ast.IntExpr{
		Value: value,
	}, nil
}

func (p *Parser) parseBoolExpr() (ast.Expr, error) {
	value := p.curr.Kind == lexer.TRUE
	if err := p.read(); err != nil {
		return failExpr(err)
	}

	return &ast.BoolExpr{
		Value: value,
	}, nil
}

func (p *Parser) parseIdentExpr() (ast.Expr, error) {
	name := p.curr.Value
	if err := p.consume(lexer.IDENT); err != nil {
		return failExpr(err)
	}

	return &ast.IdentExpr{
		Name: name,
	}, nil
}

func (p *Parser) parseParenExpr() (ast.Expr, error) {
	if err := p.consume(lexer.LPAREN); err != nil {
		return failExpr(err)
	}

	expr, err := p.parseExpr(LOWEST, "parenthesized expression")
	if err != nil {
		return failExpr(err)
	}

	if err := p.consume(lexer.RPAREN); err != nil {
		return failExpr(err)
	}

	return expr, nil
}

func (p *Parser) parsePrefixExpr() (ast.Expr, error) {
	p.trace("parsePrefixExpr")

	op := p.curr.Kind
	if err := p.read(); err != nil {
		return failExpr(err)
	}

	right, err := p.parseExpr(PREFIX, fmt.Sprintf("operand of '%s'", op.Symbol()))
	if err != nil {
		return failExpr(err)
	}

	return &ast.PrefixExpr{
		Op:    op,
		Right: right,
	}, nil
}

func (p *Parser) parseIfExpr() (ast.Expr, error) {
	p.trace("parseIfExpr")

	if err := p.consume(lexer.IF); err != nil {
		return failExpr(err)
	}
	if err := p.consume(lexer.LPAREN); err != nil {
		return failExpr(err)
	}

	cond, err := p.parseExpr(LOWEST, "if condition")
	if err != nil {
		return failExpr(err)
	}

	if err := p.consume(lexer.RPAREN); err != nil {
		return failExpr(err)
	}

	consequence, err := p.parseScope()
	if err != nil {
		return failExpr(err)
	}

	alternative := make(ast.Block, 0)
	if p.curr.Kind == lexer.ELSE {
		if err := p.read(); err != nil {
			return failExpr(err)
		}

		alternative, err = p.parseScope()
		if err != nil {
			return failExpr(err)
		}
	}

	return &ast.IfExpr{
		Cond:        cond,
		Consequence: consequence,
		Alternative: alternative,
	}, nil
}

func (p *Parser) parseFuncExpr() (ast.Expr, error) {
	p.trace("parseFuncExpr")

	if err := p.consume(lexer.FN); err != nil {
		return failExpr(err)
	}
	if err := p.consume(lexer.LPAREN); err != nil {
		return failExpr(err)
	}

	params := make([]string, 0)
	for p.curr.Kind != lexer.RPAREN {
		if err := p.expect(lexer.IDENT); err != nil {
			return failExpr(err)
		}
		params = append(params, p.curr.Value)
		if err := p.read(); err != nil {
			return failExpr(err)
		}

		if p.curr.Kind != lexer.COMMA {
			break
		}
		if err := p.read(); err != nil {
			return failExpr(err)
		}
		// A comma must be followed by another parameter.
		if err := p.expect(lexer.IDENT); err != nil {
			return failExpr(err)
		}
	}

	if err := p.consume(lexer.RPAREN); err != nil {
		return failExpr(err)
	}

	body, err := p.parseScope()
	if err != nil {
		return failExpr(err)
	}

	return &ast.FuncExpr{
		Params: params,
		Body:   body,
	}, nil
}

func (p *Parser) parseCallArgs() ([]ast.Expr, error) {
	p.trace("parseCallArgs")

	if err := p.consume(lexer.LPAREN); err != nil {
		return nil, err
	}

	args := make([]ast.Expr, 0)
	if p.curr.Kind == lexer.RPAREN {
		return args, p.read()
	}

	for {
		arg, err := p.parseExpr(LOWEST, "call argument")
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.curr.Kind != lexer.COMMA {
			break
		}
		if err := p.read(); err != nil {
			return nil, err
		}
	}

	if err := p.consume(lexer.RPAREN); err != nil {
		return nil, err
	}

	return args, nil
}

// parseScope parses '{' block '}'.
func (p *Parser) parseScope() (ast.Block, error) {
	if err := p.consume(lexer.LBRACE); err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if err := p.consume(lexer.RBRACE); err != nil {
		return nil, err
	}

	return block, nil
}

// read shifts the lookahead into curr and scans a new lookahead.
func (p *Parser) read() error {
	p.curr, p.currErr = p.peek, p.peekErr
	p.peek, p.peekErr = p.scanner.NextToken()

	if p.currErr != nil {
		return p.currErr
	}

	if p.curr.Kind == lexer.INVALID {
		return &lexer.InvalidCharacterError{
			Char: p.curr.Value[0],
		}
	}

	return nil
}

func (p *Parser) expect(kind lexer.TokenKind) error {
	if p.curr.Kind != kind {
		return &UnexpectedTokenError{
			Expected: kind,
			Found:    p.curr,
		}
	}

	return nil
}

func (p *Parser) consume(kind lexer.TokenKind) error {
	if err := p.expect(kind); err != nil {
		return err
	}

	return p.read()
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) trace(fn string) {
	if p.logger == nil {
		return
	}

	p.logger.Debug("parse",
		"fn", fn,
		"curr", p.curr.String(),
		"peek", p.peek.String(),
	)
}

func failStmt(err error) (ast.Stmt, error) {
	return &ast.EmptyStmt{}, err
}

func failExpr(err error) (ast.Expr, error) {
	return &ast.UnknownExpr{}, err
}
