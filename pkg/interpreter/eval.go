package interpreter

import (
	"log/slog"

	"github.com/dimbata23/minischeme/pkg/runtime"
)

// Eval evaluates expr in env. Numbers, booleans and procedures evaluate to
// themselves, other symbols are looked up, and a pair applies the procedure
// its car evaluates to.
func (i *Interpreter) Eval(expr runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	switch ex := expr.(type) {

	case nil:
		return nil, nil

	case runtime.Number:
		return ex, nil

	case runtime.Symbol:
		// booleans are never bound, they quote themselves
		if runtime.IsBoolean(ex) {
			return ex, nil
		}
		return env.Lookup(string(ex))

	case *runtime.Builtin, *runtime.Closure:
		return ex, nil

	case *runtime.Pair:
		return i.evalPair(ex, env)
	}

	return nil, runtime.RuntimeErrorf("cannot evaluate %s", runtime.Serialize(expr))
}

func (i *Interpreter) evalPair(expr *runtime.Pair, env *runtime.Environment) (runtime.Value, error) {
	if expr.Car == nil {
		return nil, runtime.RuntimeErrorf("nothing to apply in %s", runtime.Serialize(expr))
	}

	op, err := i.Eval(expr.Car, env)
	if err != nil {
		return nil, err
	}

	return i.apply(op, expr.Cdr, env)
}

// apply hands the raw, unevaluated operand list to op.
func (i *Interpreter) apply(op runtime.Value, args runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if !runtime.IsProcedure(op) {
		return nil, runtime.RuntimeErrorf("wrong command: %s is not a procedure", runtime.Serialize(op))
	}
	if b, ok := op.(*runtime.Builtin); ok {
		return i.callBuiltin(b, args, env)
	}
	return i.invoke(op.(*runtime.Closure), args, env)
}

func (i *Interpreter) callBuiltin(b *runtime.Builtin, args runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if !runtime.IsProperList(args) {
		return nil, runtime.SyntaxErrorf("%s: improper argument list", b.Name)
	}

	argc := runtime.CountArgs(args)
	if !b.Arity.Accepts(argc) {
		if b.SyntaxArity {
			return nil, runtime.SyntaxErrorf("%s: expected %s, got %d", b.Name, b.Arity, argc)
		}
		return nil, runtime.RuntimeErrorf("%s: expected %s, got %d", b.Name, b.Arity, argc)
	}

	if i.trace {
		i.log.Debug("builtin call",
			slog.String("name", b.Name),
			slog.String("call", b.Call.String()),
			slog.Int("argc", argc),
			slog.Int("depth", i.depth))
	}

	if b.Call == runtime.CallForm {
		return b.Form(i, env, args)
	}

	vals, err := i.evalArgs(args, env)
	if err != nil {
		return nil, err
	}
	return b.Proc(i, env, vals)
}

// evalArgs evaluates each operand left to right in the caller's environment.
func (i *Interpreter) evalArgs(args runtime.Value, env *runtime.Environment) ([]runtime.Value, error) {
	exprs, err := runtime.ListToSlice(args)
	if err != nil {
		return nil, err
	}

	vals := make([]runtime.Value, len(exprs))
	for n, expr := range exprs {
		vals[n], err = i.Eval(expr, env)
		if err != nil {
			return nil, err
		}
	}
	return vals, nil
}

// invoke calls a closure: operands are evaluated in the caller's environment
// and bound in a fresh child of the closure's defining environment.
func (i *Interpreter) invoke(c *runtime.Closure, args runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if !runtime.IsProperList(args) {
		return nil, runtime.SyntaxErrorf("improper argument list")
	}

	argc := runtime.CountArgs(args)
	if arity := (runtime.Arity{Min: len(c.Params), Max: len(c.Params)}); !arity.Accepts(argc) {
		return nil, runtime.RuntimeErrorf("%s: expected %s, got %d", runtime.Serialize(c), arity, argc)
	}

	vals, err := i.evalArgs(args, env)
	if err != nil {
		return nil, err
	}

	i.depth++
	defer func() { i.depth-- }()
	if i.depth > i.maxDepth {
		return nil, runtime.RuntimeErrorf("maximum recursion depth exceeded (%d)", i.maxDepth)
	}

	if i.trace {
		i.log.Debug("closure call",
			slog.String("name", c.Name),
			slog.Int("argc", argc),
			slog.Int("depth", i.depth))
	}

	scope := c.Env.Extend()
	for n, param := range c.Params {
		scope.Define(param, vals[n])
	}

	var result runtime.Value
	for _, expr := range c.Body {
		result, err = i.Eval(expr, scope)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
