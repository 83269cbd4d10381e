package scheme

import "fmt"

// TypeError is returned when the reader is given something other than text.
type TypeError struct {
	Input interface{}
}

func (err *TypeError) Error() string {
	return fmt.Sprintf("TypeError: can only read text, not %T", err.Input)
}

// ParseError is returned when S-expression text cannot be read.
// Incomplete is set when more input could complete the expression,
// i.e. on an unmatched "(".
type ParseError struct {
	Message    string
	Incomplete bool
}

func (err *ParseError) Error() string {
	return "ParseError: " + err.Message
}

// UndefinedError is returned when a variable is not bound in the
// accessible environment chain.
type UndefinedError struct {
	Name *Symbol
}

func (err *UndefinedError) Error() string {
	return "UndefinedError: " + err.Name.Name + " is not defined"
}

// UnknownExpressionTypeError is returned for an expression which is
// neither a recognized special form nor an application, including a
// malformed special form.
type UnknownExpressionTypeError struct {
	Message string
	Expr    Value
}

func newUnknown(msg string, x Value) *UnknownExpressionTypeError {
	return &UnknownExpressionTypeError{msg, x}
}

func (err *UnknownExpressionTypeError) Error() string {
	return "UnknownExpressionTypeError: " + err.Message + ": " +
		Stringify(err.Expr, true)
}

// ArityError is returned when a compound procedure is called with the
// wrong number of arguments.
type ArityError struct {
	Proc *Closure
	Want int
	Got  int
}

func (err *ArityError) Error() string {
	return fmt.Sprintf("ArityError: %s expects %d argument(s), got %d",
		Stringify(err.Proc, true), err.Want, err.Got)
}

// NotApplicableError is returned when a non-procedure is applied.
type NotApplicableError struct {
	Value Value
}

func (err *NotApplicableError) Error() string {
	return "NotApplicableError: " + Stringify(err.Value, true) +
		" is not a procedure"
}

// PrimitiveError is returned by the standard primitives on misuse.
type PrimitiveError struct {
	Name    string
	Message string
	Args    []Value
}

func primitiveError(name, msg string, args []Value) *PrimitiveError {
	return &PrimitiveError{name, msg, args}
}

func (err *PrimitiveError) Error() string {
	return "PrimitiveError: " + err.Name + ": " + err.Message + ": " +
		Stringify(List(err.Args), true)
}
