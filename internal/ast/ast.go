package ast

// Node is implemented by every statement and expression.
type Node interface {
	AstNode()
}

type Stmt interface {
	Node
	StmtNode()
}

type Expr interface {
	Node
	ExprNode()
}

// Block is the body of an if branch or a function literal.
type Block []Stmt
