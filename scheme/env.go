package scheme

// Environment represents a frame of bindings and its enclosing environment.
// The outermost environment, whose parent is nil, is the global one.
// Frames are shared by reference, so closures see later define and set!.
type Environment struct {
	frame  map[*Symbol]Value
	parent *Environment
}

// NewEnvironment returns an empty global environment.
func NewEnvironment() *Environment {
	return &Environment{frame: make(map[*Symbol]Value)}
}

// Extend builds a new environment whose frame holds bindings and whose
// parent is env.
func (env *Environment) Extend(bindings map[*Symbol]Value) *Environment {
	frame := make(map[*Symbol]Value, len(bindings))
	for k, v := range bindings {
		frame[k] = v
	}
	return &Environment{frame: frame, parent: env}
}

// Parent returns the enclosing environment, or nil for the global one.
func (env *Environment) Parent() *Environment {
	return env.parent
}

// find returns the innermost environment which binds sym.
func (env *Environment) find(sym *Symbol) *Environment {
	for e := env; e != nil; e = e.parent {
		if _, ok := e.frame[sym]; ok {
			return e
		}
	}
	return nil
}

// Lookup returns the value of sym, searching outward from env.
func (env *Environment) Lookup(sym *Symbol) (Value, error) {
	e := env.find(sym)
	if e == nil {
		return nil, &UndefinedError{sym}
	}
	return e.frame[sym], nil
}

// Define binds sym in the frame of env itself, overwriting any
// existing binding there.
func (env *Environment) Define(sym *Symbol, val Value) {
	env.frame[sym] = val
}

// Set rebinds sym in the innermost environment which already binds it.
func (env *Environment) Set(sym *Symbol, val Value) error {
	e := env.find(sym)
	if e == nil {
		return &UndefinedError{sym}
	}
	e.frame[sym] = val
	return nil
}

// Bound reports whether sym is bound in the frame of env itself.
func (env *Environment) Bound(sym *Symbol) bool {
	_, ok := env.frame[sym]
	return ok
}
