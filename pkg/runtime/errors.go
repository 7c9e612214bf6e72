package runtime

import (
	"errors"
	"fmt"
)

// SyntaxError reports malformed input or a malformed form signature.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return "syntax error: " + e.Msg }

// NameError reports a lookup or assignment of an unbound symbol.
type NameError struct {
	Msg string
}

func (e *NameError) Error() string { return "name error: " + e.Msg }

// RuntimeError covers arity, type and range failures during evaluation.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return "runtime error: " + e.Msg }

func SyntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

func NameErrorf(format string, args ...any) error {
	return &NameError{Msg: fmt.Sprintf(format, args...)}
}

func RuntimeErrorf(format string, args ...any) error {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}

func IsSyntaxError(err error) bool {
	var target *SyntaxError
	return errors.As(err, &target)
}

func IsNameError(err error) bool {
	var target *NameError
	return errors.As(err, &target)
}

func IsRuntimeError(err error) bool {
	var target *RuntimeError
	return errors.As(err, &target)
}

// ErrorKind classifies err as "SyntaxError", "NameError", "RuntimeError",
// or "" for anything else.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsSyntaxError(err):
		return "SyntaxError"
	case IsNameError(err):
		return "NameError"
	case IsRuntimeError(err):
		return "RuntimeError"
	}
	return ""
}
