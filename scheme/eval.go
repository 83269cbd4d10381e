package scheme

// Eval evaluates an expression in an environment.
//
// Forms are tried in order: self-evaluating values, variables, quote,
// set!, define, if, lambda, begin, cond and finally application.
// A list headed by one of the keyword symbols is always a special form.
func Eval(exp Value, env *Environment) (Value, error) {
	switch x := exp.(type) {
	case Number, String, Boolean:
		return exp, nil
	case *Symbol:
		return env.Lookup(x)
	case List:
		if len(x) == 0 {
			return nil, newUnknown("empty combination", x)
		}
		if head, ok := x[0].(*Symbol); ok {
			switch head {
			case Quote: // (quote e)
				if len(x) != 2 {
					return nil, newUnknown("bad quote form", x)
				}
				return x[1], nil
			case SetQ: // (set! var e)
				return evalAssignment(x, env)
			case Define: // (define var e) or (define (var v...) e...)
				return evalDefinition(x, env)
			case If: // (if e1 e2 e3) or (if e1 e2)
				return evalIf(x, env)
			case Lambda: // (lambda (v...) e...)
				if len(x) < 3 {
					return nil, newUnknown("bad lambda form", x)
				}
				return makeClosure(x[1], x[2:], env, x)
			case Begin: // (begin e...)
				if len(x) < 2 {
					return nil, newUnknown("bad begin form", x)
				}
				return evalSequence(x[1:], env)
			case Cond: // (cond (test e...)... (else e...))
				e, err := CondToIf(x)
				if err != nil {
					return nil, err
				}
				return Eval(e, env)
			}
		}
		return evalApplication(x, env)
	}
	return nil, newUnknown("unknown expression type", exp)
}

func evalAssignment(x List, env *Environment) (Value, error) {
	if len(x) != 3 {
		return nil, newUnknown("bad set! form", x)
	}
	sym, ok := x[1].(*Symbol)
	if !ok {
		return nil, newUnknown("bad set! form", x)
	}
	val, err := Eval(x[2], env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(sym, val); err != nil {
		return nil, err
	}
	return &Confirmation{SetQ, sym}, nil
}

func evalDefinition(x List, env *Environment) (Value, error) {
	if len(x) < 3 {
		return nil, newUnknown("bad define form", x)
	}
	switch target := x[1].(type) {
	case *Symbol:
		if len(x) != 3 {
			return nil, newUnknown("bad define form", x)
		}
		val, err := Eval(x[2], env)
		if err != nil {
			return nil, err
		}
		env.Define(target, val)
		return &Confirmation{Define, target}, nil
	case List: // (define (f v...) e...) => (define f (lambda (v...) e...))
		if len(target) == 0 {
			return nil, newUnknown("bad define form", x)
		}
		sym, ok := target[0].(*Symbol)
		if !ok {
			return nil, newUnknown("bad define form", x)
		}
		closure, err := makeClosure(target[1:], x[2:], env, x)
		if err != nil {
			return nil, err
		}
		env.Define(sym, closure)
		return &Confirmation{Define, sym}, nil
	}
	return nil, newUnknown("bad define form", x)
}

func evalIf(x List, env *Environment) (Value, error) {
	if len(x) != 3 && len(x) != 4 {
		return nil, newUnknown("bad if form", x)
	}
	test, err := Eval(x[1], env)
	if err != nil {
		return nil, err
	}
	if IsTrue(test) {
		return Eval(x[2], env)
	}
	if len(x) == 3 {
		return Void, nil
	}
	return Eval(x[3], env)
}

// makeClosure builds a closure from a parameter list and a body.
// form is the whole expression, for error messages.
func makeClosure(params Value, body List, env *Environment, form List) (*Closure, error) {
	plist, ok := params.(List)
	if !ok || len(body) == 0 {
		return nil, newUnknown("bad lambda form", form)
	}
	syms := make([]*Symbol, len(plist))
	seen := make(map[*Symbol]bool, len(plist))
	for i, p := range plist {
		sym, ok := p.(*Symbol)
		if !ok || seen[sym] {
			return nil, newUnknown("bad parameter list", form)
		}
		seen[sym] = true
		syms[i] = sym
	}
	return &Closure{Params: syms, Body: body, Env: env}, nil
}

// evalSequence evaluates each expression in turn and returns the value
// of the last one. body must not be empty.
func evalSequence(body List, env *Environment) (Value, error) {
	var result Value
	for _, e := range body {
		v, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func evalApplication(x List, env *Environment) (Value, error) {
	fun, err := Eval(x[0], env)
	if err != nil {
		return nil, err
	}
	args := make([]Value, len(x)-1)
	for i, e := range x[1:] {
		args[i], err = Eval(e, env)
		if err != nil {
			return nil, err
		}
	}
	return Apply(fun, args)
}

// CondToIf rewrites (cond (test e...)...) into nested if and begin forms.
// The test of an else clause is always true, so the clause becomes the
// innermost alternative.
func CondToIf(x List) (Value, error) {
	if len(x) < 2 {
		return nil, newUnknown("bad cond form", x)
	}
	return expandClauses(x[1:], x)
}

func expandClauses(clauses List, form List) (Value, error) {
	clause, ok := clauses[0].(List)
	if !ok || len(clause) < 2 {
		return nil, newUnknown("bad cond clause", form)
	}
	seq := append(List{Begin}, clause[1:]...)
	if clause[0] == Value(Else) {
		if len(clauses) != 1 {
			return nil, newUnknown("else clause isn't last", form)
		}
		return seq, nil
	}
	if len(clauses) == 1 {
		return List{If, clause[0], seq}, nil
	}
	alt, err := expandClauses(clauses[1:], form)
	if err != nil {
		return nil, err
	}
	return List{If, clause[0], seq, alt}, nil
}
