package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/kievzenit/amp/internal/ast"
	"github.com/kievzenit/amp/internal/compiler_errors"
	"github.com/kievzenit/amp/internal/config"
	"github.com/kievzenit/amp/internal/logs"
	"github.com/kievzenit/amp/internal/parser"
	"github.com/peterh/liner"
	"github.com/sanity-io/litter"
)

const helpText = `:quit          leave the session
:style NAME    print results as litter or compact
:help          show this text`

// Format renders a parsed program in the given output style.
func Format(stmts []ast.Stmt, style string) string {
	if style == config.StyleCompact {
		return ast.SexpProgram(stmts)
	}
	return litter.Sdump(stmts)
}

// Session is one interactive run. Every line is parsed on its own, so a
// failing line leaves nothing behind for the next one.
type Session struct {
	id     string
	cfg    *config.Config
	logger logs.Logger
	styles styles
	style  string
	lines  int

	out    io.Writer
	errOut io.Writer
}

func New(cfg *config.Config, logger logs.Logger, out, errOut io.Writer) *Session {
	id := uuid.NewString()
	return &Session{
		id:     id,
		cfg:    cfg,
		logger: logger.With("component", "repl"),
		styles: newStyles(cfg.Repl.NoColor),
		style:  cfg.Output.Style,
		out:    out,
		errOut: errOut,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Run reads lines from the terminal until EOF or :quit.
func (s *Session) Run(ctx context.Context, version string) error {
	ctx = logs.WithSession(ctx, s.id)

	fmt.Fprintln(s.out, s.styles.banner.Render(s.cfg.Repl.Banner+" "+version))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	s.readHistory(ctx, ln)
	defer s.writeHistory(ctx, ln)

	s.logger.InfoContext(ctx, "session started")
	for {
		line, err := ln.Prompt(s.cfg.Repl.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if !s.Eval(ctx, line) {
			break
		}
	}
	s.logger.InfoContext(ctx, "session ended", "lines", s.lines)

	return nil
}

// Eval handles a single input line. It returns false when the session
// should end.
func (s *Session) Eval(ctx context.Context, line string) bool {
	src := strings.TrimSpace(line)
	if src == "" {
		return true
	}
	if strings.HasPrefix(src, ":") {
		return s.command(ctx, src)
	}

	s.lines++
	stmts, err := parser.Parse(src, parser.WithLogger(s.logger.With("session", s.id)))
	if err != nil {
		s.logger.DebugContext(ctx, "parse failed", "line", s.lines, "error", err)
		fmt.Fprintln(s.errOut, s.styles.err.Render("ERROR: "+compiler_errors.Message(err)))
		return true
	}

	s.logger.DebugContext(ctx, "parsed", "line", s.lines, "stmts", len(stmts))
	fmt.Fprintln(s.out, s.styles.result.Render(Format(stmts, s.style)))
	return true
}

func (s *Session) command(ctx context.Context, src string) bool {
	fields := strings.Fields(strings.ToLower(src))
	switch fields[0] {
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Fprintln(s.out, s.styles.hint.Render(helpText))
	case ":style":
		if len(fields) != 2 || !slices.Contains([]string{config.StyleLitter, config.StyleCompact}, fields[1]) {
			fmt.Fprintln(s.errOut, s.styles.err.Render("usage: :style litter|compact"))
			break
		}
		s.style = fields[1]
		s.logger.DebugContext(ctx, "output style changed", "style", s.style)
	default:
		fmt.Fprintln(s.errOut, s.styles.hint.Render("unknown command, type :help"))
	}

	return true
}

func (s *Session) readHistory(ctx context.Context, ln *liner.State) {
	if s.cfg.Repl.HistoryFile == "" {
		return
	}

	f, err := os.Open(s.cfg.Repl.HistoryFile)
	if err != nil {
		return
	}
	defer f.Close()

	if _, err := ln.ReadHistory(f); err != nil {
		s.logger.WarnContext(ctx, "read history", "file", s.cfg.Repl.HistoryFile, "error", err)
	}
}

func (s *Session) writeHistory(ctx context.Context, ln *liner.State) {
	if s.cfg.Repl.HistoryFile == "" {
		return
	}

	f, err := os.Create(s.cfg.Repl.HistoryFile)
	if err != nil {
		s.logger.WarnContext(ctx, "write history", "file", s.cfg.Repl.HistoryFile, "error", err)
		return
	}
	defer f.Close()

	if _, err := ln.WriteHistory(f); err != nil {
		s.logger.WarnContext(ctx, "write history", "file", s.cfg.Repl.HistoryFile, "error", err)
	}
}
