package repl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kievzenit/amp/internal/config"
)

func newTestSession(t *testing.T, style string) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.Repl.NoColor = true
	cfg.Output.Style = style

	var out, errOut bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, logger, &out, &errOut), &out, &errOut
}

func TestSession_Eval(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantOut string
		wantErr string
	}{
		{"let statement", "let x = 5;", "(let x 5)\n", ""},
		{"expression", "1 + 2 * 3", "(+ 1 (* 2 3))\n", ""},
		{"blank line", "   ", "", ""},
		{"missing assign", "let x 5;", "", "ERROR: unexpected token: '5', expected: '='\n"},
		{"missing expression", "return;", "", "ERROR: missing expression for return value, got: ';'\n"},
		{"invalid character", "let x = @;", "", "ERROR: invalid character: '@'\n"},
		{"unknown command", ":frobnicate", "", "unknown command, type :help\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out, errOut := newTestSession(t, config.StyleCompact)

			if !s.Eval(context.Background(), tt.line) {
				t.Fatal("Eval() ended the session")
			}
			if out.String() != tt.wantOut {
				t.Errorf("out = %q, want %q", out.String(), tt.wantOut)
			}
			if errOut.String() != tt.wantErr {
				t.Errorf("errOut = %q, want %q", errOut.String(), tt.wantErr)
			}
		})
	}
}

func TestSession_LinesAreIndependent(t *testing.T) {
	s, out, errOut := newTestSession(t, config.StyleCompact)
	ctx := context.Background()

	s.Eval(ctx, "let x = ")
	s.Eval(ctx, "let y = 2;")

	if !strings.HasPrefix(errOut.String(), "ERROR: ") {
		t.Errorf("errOut = %q", errOut.String())
	}
	if out.String() != "(let y 2)\n" {
		t.Errorf("out = %q", out.String())
	}
}

func TestSession_Quit(t *testing.T) {
	s, _, _ := newTestSession(t, config.StyleCompact)

	for _, line := range []string{":quit", ":q", " :QUIT "} {
		if s.Eval(context.Background(), line) {
			t.Errorf("Eval(%q) kept the session running", line)
		}
	}
}

func TestSession_Style(t *testing.T) {
	s, out, errOut := newTestSession(t, config.StyleLitter)
	ctx := context.Background()

	s.Eval(ctx, "x;")
	if !strings.Contains(out.String(), "ast.IdentExpr") {
		t.Errorf("litter output = %q", out.String())
	}

	out.Reset()
	s.Eval(ctx, ":style compact")
	s.Eval(ctx, "x;")
	if out.String() != "x\n" {
		t.Errorf("compact output = %q", out.String())
	}

	s.Eval(ctx, ":style xml")
	if !strings.Contains(errOut.String(), "usage: :style") {
		t.Errorf("errOut = %q", errOut.String())
	}
}

func TestSession_ID(t *testing.T) {
	a, _, _ := newTestSession(t, config.StyleCompact)
	b, _, _ := newTestSession(t, config.StyleCompact)

	if _, err := uuid.Parse(a.ID()); err != nil {
		t.Errorf("ID() = %q is not a uuid: %v", a.ID(), err)
	}
	if a.ID() == b.ID() {
		t.Error("two sessions share an id")
	}
}
