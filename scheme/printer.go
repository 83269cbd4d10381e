package scheme

import (
	"fmt"
	"strings"
)

// Stringify returns the string representation of a value.
// Strings will be enclosed in quotes if quote is true.
func Stringify(v Value, quote bool) string {
	switch x := v.(type) {
	case Number:
		if x.Number == nil {
			return "#<NaN>"
		}
		return x.Number.String()
	case String:
		if quote {
			if strings.ContainsRune(string(x), '"') {
				return "'" + string(x) + "'"
			}
			return `"` + string(x) + `"`
		}
		return string(x)
	case *Symbol:
		return x.Name
	case Boolean:
		if x {
			return "#t"
		}
		return "#f"
	case List:
		ss := make([]string, len(x))
		for i, e := range x {
			ss[i] = Stringify(e, quote)
		}
		return "(" + strings.Join(ss, " ") + ")"
	case *Primitive:
		return "#<primitive " + x.Name + ">"
	case *Closure:
		ss := make([]string, len(x.Params))
		for i, p := range x.Params {
			ss[i] = p.Name
		}
		return "#<lambda (" + strings.Join(ss, " ") + ")>"
	case VoidValue:
		return "#<void>"
	case *Confirmation:
		return "#<" + x.Form.Name + " " + x.Name.Name + ">"
	case nil:
		return "#<nil>"
	}
	return fmt.Sprintf("%v", v)
}

// Equal reports whether a and b are structurally equal.
// Numbers compare by value, so 1 and 1.0 are equal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		if !ok || x.Number == nil || y.Number == nil {
			return false
		}
		return x.Cmp(y.Number) == 0
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Confirmation:
		y, ok := b.(*Confirmation)
		return ok && x.Form == y.Form && x.Name == y.Name
	}
	return a == b
}
