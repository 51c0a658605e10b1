package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sexp renders a node as a compact prefix form, e.g. "(+ 1 (* 2 3))".
// It is a debugging view of the tree, not source text.
func Sexp(node Node) string {
	var b strings.Builder
	writeSexp(&b, node)
	return b.String()
}

// SexpProgram renders one statement per line.
func SexpProgram(stmts []Stmt) string {
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = Sexp(stmt)
	}

	return strings.Join(lines, "\n")
}

func writeSexp(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *LetStmt:
		fmt.Fprintf(b, "(let %s ", n.Name)
		writeSexp(b, n.Value)
		b.WriteByte(')')
	case *ReturnStmt:
		b.WriteString("(return ")
		writeSexp(b, n.Value)
		b.WriteByte(')')
	case *ExprStmt:
		writeSexp(b, n.Expr)
	case *EmptyStmt:
		b.WriteString("(empty)")

	case *IntExpr:
		b.WriteString(strconv.FormatUint(n.Value, 10))
	case *StringExpr:
		b.WriteString(strconv.Quote(n.Value))
	case *BoolExpr:
		b.WriteString(strconv.FormatBool(n.Value))
	case *IdentExpr:
		b.WriteString(n.Name)
	case *PrefixExpr:
		fmt.Fprintf(b, "(%s ", n.Op.Symbol())
		writeSexp(b, n.Right)
		b.WriteByte(')')
	case *InfixExpr:
		fmt.Fprintf(b, "(%s ", n.Op.Symbol())
		writeSexp(b, n.Left)
		b.WriteByte(' ')
		writeSexp(b, n.Right)
		b.WriteByte(')')
	case *IfExpr:
		b.WriteString("(if ")
		writeSexp(b, n.Cond)
		b.WriteByte(' ')
		writeBlock(b, n.Consequence)
		b.WriteByte(' ')
		writeBlock(b, n.Alternative)
		b.WriteByte(')')
	case *FuncExpr:
		fmt.Fprintf(b, "(fn (%s) ", strings.Join(n.Params, " "))
		writeBlock(b, n.Body)
		b.WriteByte(')')
	case *CallExpr:
		b.WriteString("(call ")
		writeSexp(b, n.Func)
		for _, arg := range n.Args {
			b.WriteByte(' ')
			writeSexp(b, arg)
		}
		b.WriteByte(')')
	case *UnknownExpr:
		b.WriteString("<unknown>")
	case nil:
		b.WriteString("<nil>")
	default:
		panic(fmt.Sprintf("ast.Sexp: unhandled node %T", node))
	}
}

func writeBlock(b *strings.Builder, block Block) {
	b.WriteString("(block")
	for _, stmt := range block {
		b.WriteByte(' ')
		writeSexp(b, stmt)
	}
	b.WriteByte(')')
}
