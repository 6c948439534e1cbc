package logging

import (
	"io"

	"github.com/remiges-tech/logharbour/logharbour"
)

// AppName identifies this program in every log entry.
const AppName = "numeral"

// Logger is the leveled sink the form and the conversion client write to.
type Logger interface {
	Info(msg string, data map[string]any)
	Warn(msg string, data map[string]any)
	Error(err error, msg string, data map[string]any)
}

// Harbour writes entries through logharbour.
type Harbour struct {
	lh *logharbour.Logger
}

// New builds a logharbour-backed Logger writing JSON lines to w.
func New(w io.Writer) *Harbour {
	lctx := logharbour.NewLoggerContext(logharbour.Info)
	return &Harbour{lh: logharbour.NewLogger(lctx, AppName, w)}
}

// WithModule returns a logger whose entries are tagged with module.
func (h *Harbour) WithModule(module string) *Harbour {
	return &Harbour{lh: h.lh.WithModule(module)}
}

func (h *Harbour) Info(msg string, data map[string]any) {
	h.lh.Info().LogActivity(msg, data)
}

func (h *Harbour) Warn(msg string, data map[string]any) {
	h.lh.Warn().LogActivity(msg, data)
}

func (h *Harbour) Error(err error, msg string, data map[string]any) {
	h.lh.Error(err).LogActivity(msg, data)
}

type nop struct{}

func (nop) Info(string, map[string]any)         {}
func (nop) Warn(string, map[string]any)         {}
func (nop) Error(error, string, map[string]any) {}

// Nop returns a Logger that drops everything.
func Nop() Logger { return nop{} }

type guarded struct {
	next Logger
}

// Guard wraps l so a failing sink can never escape into the caller. A nil l
// yields Nop.
func Guard(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	if g, ok := l.(guarded); ok {
		return g
	}
	return guarded{next: l}
}

func (g guarded) Info(msg string, data map[string]any) {
	defer swallow()
	g.next.Info(msg, data)
}

func (g guarded) Warn(msg string, data map[string]any) {
	defer swallow()
	g.next.Warn(msg, data)
}

func (g guarded) Error(err error, msg string, data map[string]any) {
	defer swallow()
	g.next.Error(err, msg, data)
}

func swallow() {
	_ = recover()
}
