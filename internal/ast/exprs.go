package ast

import "github.com/kievzenit/amp/internal/lexer"

type IntExpr struct {
	Value uint64
}

type StringExpr struct {
	Value string
}

type BoolExpr struct {
	Value bool
}

// IdentExpr is an unresolved reference by name.
type IdentExpr struct {
	Name string
}

type PrefixExpr struct {
	Op    lexer.TokenKind
	Right Expr
}

type InfixExpr struct {
	Left  Expr
	Op    lexer.TokenKind
	Right Expr
}

// IfExpr has an empty, non-nil Alternative when there is no else branch.
type IfExpr struct {
	Cond        Expr
	Consequence Block
	Alternative Block
}

type FuncExpr struct {
	Params []string
	Body   Block
}

type CallExpr struct {
	Func Expr
	Args []Expr
}

// UnknownExpr is returned together with an error when no real node could be built.
// It never appears in a successfully parsed tree.
type UnknownExpr struct{}

func (*IntExpr) AstNode()     {}
func (*StringExpr) AstNode()  {}
func (*BoolExpr) AstNode()    {}
func (*IdentExpr) AstNode()   {}
func (*PrefixExpr) AstNode()  {}
func (*InfixExpr) AstNode()   {}
func (*IfExpr) AstNode()      {}
func (*FuncExpr) AstNode()    {}
func (*CallExpr) AstNode()    {}
func (*UnknownExpr) AstNode() {}

func (*IntExpr) ExprNode()     {}
func (*StringExpr) ExprNode()  {}
func (*BoolExpr) ExprNode()    {}
func (*IdentExpr) ExprNode()   {}
func (*PrefixExpr) ExprNode()  {}
func (*InfixExpr) ExprNode()   {}
func (*IfExpr) ExprNode()      {}
func (*FuncExpr) ExprNode()    {}
func (*CallExpr) ExprNode()    {}
func (*UnknownExpr) ExprNode() {}
