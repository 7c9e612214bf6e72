package runtime

import "sort"

// Environment provides lexical scoping: a set of bindings plus the enclosing
// environment. The parent link never changes after creation.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Define inserts or shadows a binding in this environment only.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign updates the binding in the nearest environment that has it.
func (e *Environment) Assign(name string, value Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return nil
		}
	}
	return NameErrorf("unbound variable %q", name)
}

// Lookup retrieves a binding, searching outward through the scope chain.
func (e *Environment) Lookup(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, NameErrorf("unbound variable %q", name)
}

// Bound reports whether name is bound anywhere in the chain.
func (e *Environment) Bound(name string) bool {
	_, err := e.Lookup(name)
	return err == nil
}

// Keys returns this environment's own names in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extend creates a child scope.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
