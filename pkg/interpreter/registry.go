package interpreter

import (
	rt "github.com/dimbata23/minischeme/pkg/runtime"
)

var (
	variadic = rt.Arity{Min: 0, Max: -1}
	unary    = rt.Arity{Min: 1, Max: 1}
	binary   = rt.Arity{Min: 2, Max: 2}
)

// builtins is the fixed table installed into every root environment.
var builtins = []*rt.Builtin{
	rt.NewProcedure("+", variadic, procAdd),
	rt.NewProcedure("*", variadic, procMultiply),
	rt.NewProcedure("-", rt.Arity{Min: 1, Max: -1}, procSubtract),
	rt.NewProcedure("/", rt.Arity{Min: 1, Max: -1}, procDivide),

	rt.NewForm("=", variadic, procComp("=", equal)),
	rt.NewForm("<", variadic, procComp("<", less)),
	rt.NewForm(">", variadic, procComp(">", greater)),
	rt.NewForm("<=", variadic, procComp("<=", lessEq)),
	rt.NewForm(">=", variadic, procComp(">=", greaterEq)),

	rt.NewProcedure("max", rt.Arity{Min: 1, Max: -1}, procMax),
	rt.NewProcedure("min", rt.Arity{Min: 1, Max: -1}, procMin),
	rt.NewProcedure("abs", unary, procAbs),

	rt.NewProcedure("number?", unary, predicate(isNumber)),
	rt.NewProcedure("boolean?", unary, predicate(rt.IsBoolean)),
	rt.NewProcedure("pair?", unary, predicate(isPair)),
	rt.NewProcedure("null?", unary, predicate(isNull)),
	rt.NewProcedure("list?", unary, predicate(rt.IsProperList)),
	rt.NewProcedure("symbol?", unary, predicate(isSymbol)),

	rt.NewProcedure("not", unary, procNot),
	rt.NewForm("and", variadic, formAnd),
	rt.NewForm("or", variadic, formOr),

	rt.NewProcedure("cons", binary, procCons),
	rt.NewProcedure("car", unary, procCar),
	rt.NewProcedure("cdr", unary, procCdr),
	rt.NewProcedure("list", variadic, procList),
	rt.NewProcedure("list-ref", binary, procListRef),
	rt.NewProcedure("list-tail", binary, procListTail),

	// a wrong operand count in quote is a runtime failure, not bad syntax
	{Name: "quote", Call: rt.CallForm, Arity: unary, Form: formQuote},
	rt.NewForm("define", rt.Arity{Min: 2, Max: -1}, formDefine),
	rt.NewForm("set!", binary, formSet),
	rt.NewForm("if", rt.Arity{Min: 2, Max: 3}, formIf),
	rt.NewForm("lambda", rt.Arity{Min: 2, Max: -1}, formLambda),
	rt.NewForm("set-car!", binary, formSetCar),
	rt.NewForm("set-cdr!", binary, formSetCdr),
}

func installBuiltins(env *rt.Environment) {
	for _, b := range builtins {
		env.Define(b.Name, b)
	}
}

// Builtin returns the registered builtin called name.
func Builtin(name string) (*rt.Builtin, bool) {
	for _, b := range builtins {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}
