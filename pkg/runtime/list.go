package runtime

// List builds a proper list from vals.
func List(vals ...Value) Value {
	var out Value
	for i := len(vals) - 1; i >= 0; i-- {
		out = Cons(vals[i], out)
	}
	return out
}

// CountArgs counts the elements of a pair chain without evaluating them. A
// non-empty dotted tail counts as one more element.
func CountArgs(v Value) int {
	n := 0
	for {
		p, ok := v.(*Pair)
		if !ok {
			break
		}
		n++
		v = p.Cdr
	}
	if v != nil {
		n++
	}
	return n
}

// IsProperList reports whether v is empty or a pair chain ending in empty.
// Cyclic chains are not proper.
func IsProperList(v Value) bool {
	slow, fast := v, v
	for {
		p, ok := fast.(*Pair)
		if !ok {
			return fast == nil
		}
		fast = p.Cdr
		p, ok = fast.(*Pair)
		if !ok {
			return fast == nil
		}
		fast = p.Cdr
		slow = slow.(*Pair).Cdr
		if fast == slow {
			return false
		}
	}
}

// ListToSlice materializes a proper list into its elements in order.
func ListToSlice(v Value) ([]Value, error) {
	if !IsProperList(v) {
		return nil, RuntimeErrorf("proper list expected, got %s", Serialize(v))
	}
	var out []Value
	for v != nil {
		p := v.(*Pair)
		out = append(out, p.Car)
		v = p.Cdr
	}
	return out, nil
}

// SliceToList is List over a slice.
func SliceToList(vals []Value) Value {
	return List(vals...)
}
