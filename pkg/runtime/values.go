package runtime

import "strconv"

// Kind identifies the runtime value category.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindSymbol
	KindPair
	KindBuiltin
	KindClosure
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindPair:
		return "pair"
	case KindBuiltin:
		return "builtin"
	case KindClosure:
		return "closure"
	}
	return "unknown"
}

// Value is every runtime value and syntax node. The empty list is nil.
type Value interface {
	Kind() Kind
	value()
}

// Number is a 64-bit integer.
type Number int64

func (Number) Kind() Kind { return KindNumber }
func (Number) value()     {}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Symbol is an identifier. Booleans are the two reserved symbols #t and #f.
type Symbol string

func (Symbol) Kind() Kind { return KindSymbol }
func (Symbol) value()     {}

const (
	True  Symbol = "#t"
	False Symbol = "#f"
)

// Bool converts a Go bool to its boolean symbol.
func Bool(b bool) Symbol {
	if b {
		return True
	}
	return False
}

// IsBoolean reports whether v is one of the reserved boolean symbols.
func IsBoolean(v Value) bool {
	s, ok := v.(Symbol)
	return ok && (s == True || s == False)
}

// IsFalse reports whether v is the #f symbol; every other value is truthy.
func IsFalse(v Value) bool {
	s, ok := v.(Symbol)
	return ok && s == False
}

// Pair is a mutable cons cell. Pairs are shared by pointer, so set-car! and
// set-cdr! are visible through every alias.
type Pair struct {
	Car Value
	Cdr Value
}

func (*Pair) Kind() Kind { return KindPair }
func (*Pair) value()     {}

// Cons allocates a new pair.
func Cons(car, cdr Value) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

// CallKind tells the evaluator how a builtin receives its operands.
type CallKind int

const (
	// CallProcedure builtins get their operands evaluated left to right in
	// the caller's environment.
	CallProcedure CallKind = iota
	// CallForm builtins get the raw operand list and control evaluation.
	CallForm
)

func (k CallKind) String() string {
	if k == CallForm {
		return "form"
	}
	return "procedure"
}

// Evaluator is the part of the interpreter builtins call back into.
type Evaluator interface {
	Eval(expr Value, env *Environment) (Value, error)
}

// FormFunc implements a special form.
type FormFunc func(ev Evaluator, env *Environment, args Value) (Value, error)

// ProcFunc implements an eager procedure over already evaluated arguments.
type ProcFunc func(ev Evaluator, env *Environment, args []Value) (Value, error)

// Arity bounds the operand count. Max < 0 means variadic.
type Arity struct {
	Min int
	Max int
}

// Accepts reports whether n operands satisfy the arity.
func (a Arity) Accepts(n int) bool {
	if n < a.Min {
		return false
	}
	return a.Max < 0 || n <= a.Max
}

func (a Arity) String() string {
	switch {
	case a.Max < 0:
		return "at least " + arguments(a.Min)
	case a.Min == a.Max:
		return "exactly " + arguments(a.Min)
	default:
		return strconv.Itoa(a.Min) + " to " + arguments(a.Max)
	}
}

func arguments(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return strconv.Itoa(n) + " arguments"
}

// Builtin is a native procedure or special form. Builtins are stateless and
// shared by every environment.
type Builtin struct {
	Name  string
	Call  CallKind
	Arity Arity
	// SyntaxArity reports a wrong operand count as a malformed form
	// (SyntaxError) instead of a RuntimeError.
	SyntaxArity bool
	Form        FormFunc
	Proc        ProcFunc
}

func (*Builtin) Kind() Kind { return KindBuiltin }
func (*Builtin) value()     {}

// NewForm registers a special form whose operand count is part of its
// syntax.
func NewForm(name string, arity Arity, fn FormFunc) *Builtin {
	return &Builtin{Name: name, Call: CallForm, Arity: arity, SyntaxArity: true, Form: fn}
}

// NewProcedure registers an eager procedure.
func NewProcedure(name string, arity Arity, fn ProcFunc) *Builtin {
	return &Builtin{Name: name, Call: CallProcedure, Arity: arity, Proc: fn}
}

// Closure is a user-defined procedure. Env is the defining environment,
// shared rather than copied.
type Closure struct {
	Name   string
	Params []string
	Body   []Value
	Env    *Environment
}

func (*Closure) Kind() Kind { return KindClosure }
func (*Closure) value()     {}

// KindOf returns the kind of v, treating nil as the empty list.
func KindOf(v Value) Kind {
	if v == nil {
		return KindEmpty
	}
	return v.Kind()
}

// IsProcedure reports whether v can be applied.
func IsProcedure(v Value) bool {
	switch v.(type) {
	case *Builtin, *Closure:
		return true
	}
	return false
}
