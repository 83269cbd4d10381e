package scheme

// Apply applies a procedure to evaluated arguments.
// A closure's body runs in a new frame whose parent is the closure's
// environment, so its parameters never leak into the caller's one.
func Apply(fun Value, args []Value) (Value, error) {
	switch fn := fun.(type) {
	case *Primitive:
		return fn.Fn(args)
	case *Closure:
		if len(args) != len(fn.Params) {
			return nil, &ArityError{fn, len(fn.Params), len(args)}
		}
		bindings := make(map[*Symbol]Value, len(args))
		for i, p := range fn.Params {
			bindings[p] = args[i]
		}
		return evalSequence(fn.Body, fn.Env.Extend(bindings))
	}
	return nil, &NotApplicableError{fun}
}
