package scheme

import (
	"fmt"
	"io"

	"github.com/nukata/goarith"
)

// NewGlobalEnvironment returns a global environment holding prims and
// the constants #t and #f.
func NewGlobalEnvironment(prims map[string]*Primitive) *Environment {
	env := NewEnvironment()
	env.Define(Intern("#t"), Boolean(true))
	env.Define(Intern("#f"), Boolean(false))
	for name, p := range prims {
		env.Define(Intern(name), p)
	}
	return env
}

// StandardPrimitives returns the built-in procedures by name.
// display and newline write to w.
func StandardPrimitives(w io.Writer) map[string]*Primitive {
	m := make(map[string]*Primitive)
	def := func(name string, fn func(args []Value) (Value, error)) {
		m[name] = &Primitive{name, fn}
	}

	def("+", fold("+", 0, goarith.Number.Add))
	def("*", fold("*", 1, goarith.Number.Mul))
	def("-", func(args []Value) (Value, error) {
		ns, err := numbers("-", args, 1)
		if err != nil {
			return nil, err
		}
		if len(ns) == 1 {
			return Number{Int(0).Sub(ns[0])}, nil
		}
		acc := ns[0]
		for _, n := range ns[1:] {
			acc = acc.Sub(n)
		}
		return Number{acc}, nil
	})
	def("/", func(args []Value) (Value, error) {
		ns, err := numbers("/", args, 1)
		if err != nil {
			return nil, err
		}
		if len(ns) == 1 {
			ns = append([]goarith.Number{Int(1).Number}, ns...)
		}
		acc := ns[0]
		for _, n := range ns[1:] {
			if n.Cmp(Int(0).Number) == 0 {
				return nil, primitiveError("/", "division by zero", args)
			}
			acc = acc.RQuo(n)
		}
		return Number{acc}, nil
	})

	def("=", compare("=", func(c int) bool { return c == 0 }))
	def("<", compare("<", func(c int) bool { return c < 0 }))
	def(">", compare(">", func(c int) bool { return c > 0 }))
	def("<=", compare("<=", func(c int) bool { return c <= 0 }))
	def(">=", compare(">=", func(c int) bool { return c >= 0 }))

	def("car", func(args []Value) (Value, error) {
		x, err := pairArg("car", args)
		if err != nil {
			return nil, err
		}
		return x[0], nil
	})
	def("cdr", func(args []Value) (Value, error) {
		x, err := pairArg("cdr", args)
		if err != nil {
			return nil, err
		}
		return x[1:], nil
	})
	def("cons", func(args []Value) (Value, error) {
		if len(args) != 2 {
			return nil, primitiveError("cons", "expects 2 arguments", args)
		}
		tail, ok := args[1].(List)
		if !ok {
			return nil, primitiveError("cons", "second argument is not a list", args)
		}
		result := make(List, 0, len(tail)+1)
		return append(append(result, args[0]), tail...), nil
	})
	def("list", func(args []Value) (Value, error) {
		return append(List{}, args...), nil
	})
	def("length", func(args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, primitiveError("length", "expects 1 argument", args)
		}
		x, ok := args[0].(List)
		if !ok {
			return nil, primitiveError("length", "not a list", args)
		}
		return Int(len(x)), nil
	})

	def("null?", predicate("null?", func(v Value) bool {
		x, ok := v.(List)
		return ok && len(x) == 0
	}))
	def("pair?", predicate("pair?", func(v Value) bool {
		x, ok := v.(List)
		return ok && len(x) != 0
	}))
	def("list?", predicate("list?", func(v Value) bool {
		_, ok := v.(List)
		return ok
	}))
	def("number?", predicate("number?", func(v Value) bool {
		_, ok := v.(Number)
		return ok
	}))
	def("string?", predicate("string?", func(v Value) bool {
		_, ok := v.(String)
		return ok
	}))
	def("symbol?", predicate("symbol?", func(v Value) bool {
		_, ok := v.(*Symbol)
		return ok
	}))
	def("procedure?", predicate("procedure?", func(v Value) bool {
		switch v.(type) {
		case *Primitive, *Closure:
			return true
		}
		return false
	}))
	def("not", predicate("not", func(v Value) bool {
		return !IsTrue(v)
	}))

	def("eq?", func(args []Value) (Value, error) {
		if len(args) != 2 {
			return nil, primitiveError("eq?", "expects 2 arguments", args)
		}
		return Boolean(eqv(args[0], args[1])), nil
	})
	def("equal?", func(args []Value) (Value, error) {
		if len(args) != 2 {
			return nil, primitiveError("equal?", "expects 2 arguments", args)
		}
		return Boolean(Equal(args[0], args[1])), nil
	})

	def("display", func(args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, primitiveError("display", "expects 1 argument", args)
		}
		fmt.Fprint(w, Stringify(args[0], false))
		return Void, nil
	})
	def("newline", func(args []Value) (Value, error) {
		if len(args) != 0 {
			return nil, primitiveError("newline", "expects no arguments", args)
		}
		fmt.Fprintln(w)
		return Void, nil
	})
	return m
}

// numbers checks that args are at least min numbers.
func numbers(name string, args []Value, min int) ([]goarith.Number, error) {
	if len(args) < min {
		return nil, primitiveError(name, fmt.Sprintf(
			"expects at least %d argument(s)", min), args)
	}
	ns := make([]goarith.Number, len(args))
	for i, a := range args {
		n, ok := a.(Number)
		if !ok || n.Number == nil {
			return nil, primitiveError(name, "not a number: "+
				Stringify(a, true), args)
		}
		ns[i] = n.Number
	}
	return ns, nil
}

func fold(name string, unit int, op func(goarith.Number, goarith.Number) goarith.Number) func([]Value) (Value, error) {
	return func(args []Value) (Value, error) {
		ns, err := numbers(name, args, 0)
		if err != nil {
			return nil, err
		}
		acc := Int(unit).Number
		for _, n := range ns {
			acc = op(acc, n)
		}
		return Number{acc}, nil
	}
}

func compare(name string, holds func(int) bool) func([]Value) (Value, error) {
	return func(args []Value) (Value, error) {
		ns, err := numbers(name, args, 1)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(ns); i++ {
			if !holds(ns[i-1].Cmp(ns[i])) {
				return Boolean(false), nil
			}
		}
		return Boolean(true), nil
	}
}

func predicate(name string, test func(Value) bool) func([]Value) (Value, error) {
	return func(args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, primitiveError(name, "expects 1 argument", args)
		}
		return Boolean(test(args[0])), nil
	}
}

func pairArg(name string, args []Value) (List, error) {
	if len(args) != 1 {
		return nil, primitiveError(name, "expects 1 argument", args)
	}
	x, ok := args[0].(List)
	if !ok || len(x) == 0 {
		return nil, primitiveError(name, "not a pair", args)
	}
	return x, nil
}

// eqv compares numbers by value, lists by identity and the rest with ==.
func eqv(a, b Value) bool {
	switch x := a.(type) {
	case Number:
		return Equal(a, b)
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		return len(x) == 0 || &x[0] == &y[0]
	}
	if _, ok := b.(List); ok {
		return false
	}
	return a == b
}
