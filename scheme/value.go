// Package scheme implements the reader and the eval/apply core of a
// small Scheme.
package scheme

import (
	"sync"

	"github.com/nukata/goarith"
)

// Value is any datum the reader produces or the evaluator computes.
// The set of cases is closed: Number, String, *Symbol, List, Boolean,
// *Primitive, *Closure, VoidValue and *Confirmation.
type Value interface {
	isValue()
}

// Number represents a Scheme number.
type Number struct {
	goarith.Number
}

// NewNumber converts an int, int32, int64, float64, *big.Int or
// goarith.Number into a Number. It returns false for anything else.
func NewNumber(x interface{}) (Number, bool) {
	if n := goarith.AsNumber(x); n != nil {
		return Number{n}, true
	}
	return Number{}, false
}

// Int returns the Number for an int.
func Int(i int) Number {
	return Number{goarith.AsNumber(i)}
}

// String represents an immutable string literal.
type String string

// Boolean represents #t and #f.
type Boolean bool

// List is an ordered sequence of values. It is used both for code and
// data; the empty List is ().
type List []Value

//----------------------------------------------------------------------

// Symbol represents Scheme's symbol.
type Symbol struct {
	Name string
}

// The mapping from string to *Symbol
var symbols sync.Map

// Intern interns a name as a symbol.
func Intern(name string) *Symbol {
	sym, _ := symbols.LoadOrStore(name, &Symbol{name})
	return sym.(*Symbol)
}

func (s *Symbol) String() string {
	return s.Name
}

// Keywords which introduce special forms
var (
	Quote  = Intern("quote")
	SetQ   = Intern("set!")
	Define = Intern("define")
	If     = Intern("if")
	Lambda = Intern("lambda")
	Begin  = Intern("begin")
	Cond   = Intern("cond")
	Else   = Intern("else")
)

//----------------------------------------------------------------------

// Primitive represents a procedure implemented in Go.
// Fn receives the already evaluated arguments.
type Primitive struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

// Closure represents a lambda expression with its environment.
type Closure struct {
	Params []*Symbol
	Body   List
	Env    *Environment
}

// VoidValue is the type of Void.
type VoidValue struct{}

// Void means the expression has no specified value.
var Void = VoidValue{}

// Confirmation is the result of define and set!.
type Confirmation struct {
	Form *Symbol // Define or SetQ
	Name *Symbol
}

func (Number) isValue()        {}
func (String) isValue()        {}
func (Boolean) isValue()       {}
func (List) isValue()          {}
func (*Symbol) isValue()       {}
func (*Primitive) isValue()    {}
func (*Closure) isValue()      {}
func (VoidValue) isValue()     {}
func (*Confirmation) isValue() {}

// IsTrue reports whether v counts as true in a test position.
// Only #f and () are false; 0 and "" are true.
func IsTrue(v Value) bool {
	switch x := v.(type) {
	case Boolean:
		return bool(x)
	case List:
		return len(x) != 0
	}
	return true
}
