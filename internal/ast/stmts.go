package ast

type LetStmt struct {
	Name  string
	Value Expr
}

type ReturnStmt struct {
	Value Expr
}

type ExprStmt struct {
	Expr Expr
}

// EmptyStmt fills a statement slot that holds nothing, such as a lone ';'.
type EmptyStmt struct{}

func (*LetStmt) AstNode()    {}
func (*ReturnStmt) AstNode() {}
func (*ExprStmt) AstNode()   {}
func (*EmptyStmt) AstNode()  {}

func (*LetStmt) StmtNode()    {}
func (*ReturnStmt) StmtNode() {}
func (*ExprStmt) StmtNode()   {}
func (*EmptyStmt) StmtNode()  {}
