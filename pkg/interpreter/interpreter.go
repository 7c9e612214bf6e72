package interpreter

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dimbata23/minischeme/pkg/parser"
	"github.com/dimbata23/minischeme/pkg/runtime"
)

// DefaultMaxDepth bounds nested closure calls so that runaway recursion fails
// with a RuntimeError instead of exhausting the goroutine stack.
const DefaultMaxDepth = 100000

// MaxDepthLimit is the largest accepted depth limit; deeper recursion would
// overflow the default maximum goroutine stack.
const MaxDepthLimit = 250000

// Interpreter owns one root environment for its whole lifetime. Successive
// Run calls observe earlier define and set! effects.
type Interpreter struct {
	global   *runtime.Environment
	log      *slog.Logger
	trace    bool
	maxDepth int
	depth    int
}

type Option func(*Interpreter)

func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		if logger != nil {
			i.log = logger
		}
	}
}

// WithMaxDepth sets the closure call depth limit; n <= 0 keeps the default
// and larger values are capped at MaxDepthLimit.
func WithMaxDepth(n int) Option {
	return func(i *Interpreter) {
		if n > 0 {
			i.maxDepth = min(n, MaxDepthLimit)
		}
	}
}

func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global:   runtime.NewEnvironment(nil),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.trace = i.log.Enabled(context.Background(), slog.LevelDebug)
	installBuiltins(i.global)
	return i
}

// Global returns the root environment.
func (i *Interpreter) Global() *runtime.Environment {
	return i.global
}

// Run parses exactly one expression, evaluates it in the root environment
// and serializes the result. Forms that produce no value serialize as "()".
func (i *Interpreter) Run(text string) (string, error) {
	expr, err := parser.Parse(text)
	if err != nil {
		return "", err
	}
	if expr == nil {
		return "()", nil
	}

	result, err := i.evalTop(expr)
	if err != nil {
		return "", err
	}
	return runtime.Serialize(result), nil
}

// RunAll evaluates every top-level expression of text in order and returns
// the serialized results. It stops at the first error, returning the
// results produced before it.
func (i *Interpreter) RunAll(text string) ([]string, error) {
	p := parser.New(text)
	var out []string
	for {
		expr, err := p.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}

		result, err := i.evalTop(expr)
		if err != nil {
			return out, err
		}
		out = append(out, runtime.Serialize(result))
	}
}

func (i *Interpreter) evalTop(expr runtime.Value) (runtime.Value, error) {
	i.depth = 0
	result, err := i.Eval(expr, i.global)
	if err != nil && i.trace {
		i.log.Debug("evaluation failed",
			slog.String("expr", runtime.Serialize(expr)),
			slog.String("kind", runtime.ErrorKind(err)),
			slog.Any("error", err))
	}
	return result, err
}

// Names lists every name bound in the root environment.
func (i *Interpreter) Names() []string {
	return i.global.Keys()
}
