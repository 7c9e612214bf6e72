package interpreter

import (
	rt "github.com/dimbata23/minischeme/pkg/runtime"
)

// Special forms receive their operands unevaluated together with the
// caller's environment. The operand count has already been checked.

func formQuote(_ rt.Evaluator, _ *rt.Environment, args rt.Value) (rt.Value, error) {
	return args.(*rt.Pair).Car, nil
}

func formIf(ev rt.Evaluator, env *rt.Environment, args rt.Value) (rt.Value, error) {
	argv, err := rt.ListToSlice(args)
	if err != nil {
		return nil, err
	}

	cond, err := ev.Eval(argv[0], env)
	if err != nil {
		return nil, err
	}

	if !rt.IsFalse(cond) {
		return ev.Eval(argv[1], env)
	}
	if len(argv) == 3 {
		return ev.Eval(argv[2], env)
	}

	return nil, nil
}

func formDefine(ev rt.Evaluator, env *rt.Environment, args rt.Value) (rt.Value, error) {
	argv, err := rt.ListToSlice(args)
	if err != nil {
		return nil, err
	}

	switch target := argv[0].(type) {
	case rt.Symbol: // Variable definition
		if len(argv) != 2 {
			return nil, rt.SyntaxErrorf("define: expected exactly one expression after %s", target)
		}
		val, err := ev.Eval(argv[1], env)
		if err != nil {
			return nil, err
		}
		if c, ok := val.(*rt.Closure); ok && c.Name == "" {
			c.Name = string(target)
		}
		env.Define(string(target), val)

	case *rt.Pair: // Procedure definition: (define (name params...) body...)
		signature, err := symbolList("define", target)
		if err != nil {
			return nil, err
		}
		name := signature[0]
		env.Define(name, &rt.Closure{
			Name:   name,
			Params: signature[1:],
			Body:   argv[1:],
			Env:    env,
		})

	default:
		return nil, rt.SyntaxErrorf("define: symbol or signature expected, got %s", rt.Serialize(argv[0]))
	}

	return nil, nil
}

func formSet(ev rt.Evaluator, env *rt.Environment, args rt.Value) (rt.Value, error) {
	argv, err := rt.ListToSlice(args)
	if err != nil {
		return nil, err
	}

	name, ok := argv[0].(rt.Symbol)
	if !ok {
		return nil, rt.SyntaxErrorf("set!: symbol expected, got %s", rt.Serialize(argv[0]))
	}

	val, err := ev.Eval(argv[1], env)
	if err != nil {
		return nil, err
	}

	return nil, env.Assign(string(name), val)
}

func formLambda(_ rt.Evaluator, env *rt.Environment, args rt.Value) (rt.Value, error) {
	argv, err := rt.ListToSlice(args)
	if err != nil {
		return nil, err
	}

	var params []string
	switch sig := argv[0].(type) {
	case nil:
	case *rt.Pair:
		params, err = symbolList("lambda", sig)
		if err != nil {
			return nil, err
		}
	default:
		return nil, rt.SyntaxErrorf("lambda: parameter list expected, got %s", rt.Serialize(argv[0]))
	}

	return &rt.Closure{Params: params, Body: argv[1:], Env: env}, nil
}

// symbolList validates a signature or parameter list made only of symbols.
func symbolList(form string, v rt.Value) ([]string, error) {
	elems, err := rt.ListToSlice(v)
	if err != nil {
		return nil, rt.SyntaxErrorf("%s: malformed signature %s", form, rt.Serialize(v))
	}

	names := make([]string, len(elems))
	for n, elem := range elems {
		s, ok := elem.(rt.Symbol)
		if !ok || rt.IsBoolean(s) {
			return nil, rt.SyntaxErrorf("%s: only symbols allowed in signature, got %s", form, rt.Serialize(elem))
		}
		names[n] = string(s)
	}
	return names, nil
}

func formSetCar(ev rt.Evaluator, env *rt.Environment, args rt.Value) (rt.Value, error) {
	return mutatePair(ev, env, args, "set-car!", func(p *rt.Pair, v rt.Value) { p.Car = v })
}

func formSetCdr(ev rt.Evaluator, env *rt.Environment, args rt.Value) (rt.Value, error) {
	return mutatePair(ev, env, args, "set-cdr!", func(p *rt.Pair, v rt.Value) { p.Cdr = v })
}

func mutatePair(ev rt.Evaluator, env *rt.Environment, args rt.Value, name string, set func(*rt.Pair, rt.Value)) (rt.Value, error) {
	argv, err := rt.ListToSlice(args)
	if err != nil {
		return nil, err
	}

	target, err := ev.Eval(argv[0], env)
	if err != nil {
		return nil, err
	}
	pair, err := reducePair(ev, env, target, name)
	if err != nil {
		return nil, err
	}

	val, err := ev.Eval(argv[1], env)
	if err != nil {
		return nil, err
	}

	set(pair, val)
	return pair, nil
}

// reducePair accepts v if it is a pair, otherwise evaluates it once more so a
// quoted symbol naming a pair also works.
func reducePair(ev rt.Evaluator, env *rt.Environment, v rt.Value, name string) (*rt.Pair, error) {
	if v == nil {
		return nil, rt.RuntimeErrorf("%s: pair expected, got ()", name)
	}
	if p, ok := v.(*rt.Pair); ok {
		return p, nil
	}

	again, err := ev.Eval(v, env)
	if err != nil {
		return nil, err
	}
	p, ok := again.(*rt.Pair)
	if !ok {
		return nil, rt.RuntimeErrorf("%s: pair expected, got %s %s", name, rt.KindOf(again), rt.Serialize(again))
	}
	return p, nil
}

func formAnd(ev rt.Evaluator, env *rt.Environment, args rt.Value) (rt.Value, error) {
	var last rt.Value = rt.True
	for args != nil {
		cell := args.(*rt.Pair)
		val, err := ev.Eval(cell.Car, env)
		if err != nil {
			return nil, err
		}
		if rt.IsFalse(val) {
			return val, nil
		}
		last = val
		args = cell.Cdr
	}
	return last, nil
}

func formOr(ev rt.Evaluator, env *rt.Environment, args rt.Value) (rt.Value, error) {
	var last rt.Value = rt.False
	for args != nil {
		cell := args.(*rt.Pair)
		val, err := ev.Eval(cell.Car, env)
		if err != nil {
			return nil, err
		}
		if !rt.IsFalse(val) {
			return val, nil
		}
		last = val
		args = cell.Cdr
	}
	return last, nil
}
