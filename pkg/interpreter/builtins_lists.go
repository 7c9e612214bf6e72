package interpreter

import (
	rt "github.com/dimbata23/minischeme/pkg/runtime"
)

func procCons(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
	return rt.Cons(args[0], args[1]), nil
}

func procCar(ev rt.Evaluator, env *rt.Environment, args []rt.Value) (rt.Value, error) {
	p, err := reducePair(ev, env, args[0], "car")
	if err != nil {
		return nil, err
	}
	return p.Car, nil
}

func procCdr(ev rt.Evaluator, env *rt.Environment, args []rt.Value) (rt.Value, error) {
	p, err := reducePair(ev, env, args[0], "cdr")
	if err != nil {
		return nil, err
	}
	return p.Cdr, nil
}

// procList builds a fresh list of its evaluated operands.
func procList(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
	return rt.SliceToList(args), nil
}

func listIndex(name string, list, index rt.Value) ([]rt.Value, int, error) {
	n, ok := index.(rt.Number)
	if !ok {
		return nil, 0, rt.RuntimeErrorf("%s: index expected, got %s", name, rt.Serialize(index))
	}
	if n < 0 {
		return nil, 0, rt.RuntimeErrorf("%s: index %d out of range", name, n)
	}

	elems, err := rt.ListToSlice(list)
	if err != nil {
		return nil, 0, rt.RuntimeErrorf("%s: proper list expected, got %s", name, rt.Serialize(list))
	}
	if int64(n) > int64(len(elems)) {
		return nil, 0, rt.RuntimeErrorf("%s: index %d out of range", name, n)
	}
	return elems, int(n), nil
}

func procListRef(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
	elems, n, err := listIndex("list-ref", args[0], args[1])
	if err != nil {
		return nil, err
	}
	if n == len(elems) {
		return nil, rt.RuntimeErrorf("list-ref: index %d out of range", n)
	}
	return elems[n], nil
}

// procListTail copies the elements from the index onward into a new list.
func procListTail(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
	elems, n, err := listIndex("list-tail", args[0], args[1])
	if err != nil {
		return nil, err
	}
	return rt.SliceToList(elems[n:]), nil
}
