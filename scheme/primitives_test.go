package scheme

import (
	"bytes"
	"testing"
)

func TestPrimitives(t *testing.T) {
	env := newTestEnv()
	for _, tt := range []struct {
		input string
		want  string
	}{
		{"(+)", "0"},
		{"(+ 1 2 3)", "6"},
		{"(*)", "1"},
		{"(* 2 3 4)", "24"},
		{"(- 5)", "-5"},
		{"(- 10 3 2)", "5"},
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(> 3 2)", "#t"},
		{"(<= 2 2)", "#t"},
		{"(>= 1 2)", "#f"},
		{"(= 2 2 2)", "#t"},
		{"(car (quote (1 2 3)))", "1"},
		{"(cdr (quote (1 2 3)))", "(2 3)"},
		{"(cdr (quote (1)))", "()"},
		{"(cons 1 (list 2 3))", "(1 2 3)"},
		{"(cons (quote (a)) (quote ()))", "((a))"},
		{"(list)", "()"},
		{"(length (list 1 2 3))", "3"},
		{"(null? (quote ()))", "#t"},
		{"(null? (list 1))", "#f"},
		{"(pair? (list 1))", "#t"},
		{"(list? (quote ()))", "#t"},
		{"(number? 1)", "#t"},
		{"(number? 'one')", "#f"},
		{"(string? 'one')", "#t"},
		{"(symbol? (quote one))", "#t"},
		{"(symbol? 'one')", "#f"},
		{"(procedure? car)", "#t"},
		{"(procedure? (lambda () 1))", "#t"},
		{"(procedure? 1)", "#f"},
		{"(not #f)", "#t"},
		{"(not 0)", "#f"},
		{"(eq? (quote a) (quote a))", "#t"},
		{"(eq? 2 2)", "#t"},
		{"(eq? (list 1) (list 1))", "#f"},
		{"(equal? (list 1 (list 2)) (list 1 (list 2)))", "#t"},
		{"(equal? 'a' 'b')", "#f"},
	} {
		got, err := evalString(env, tt.input)
		if err != nil {
			t.Errorf("%s: %v", tt.input, err)
			continue
		}
		if s := Stringify(got, true); s != tt.want {
			t.Errorf("%s = %s; want %s", tt.input, s, tt.want)
		}
	}
}

func TestDivision(t *testing.T) {
	env := newTestEnv()
	got, err := evalString(env, "(/ 6 3)")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(got, Int(2)) {
		t.Errorf("(/ 6 3) = %s; want 2", Stringify(got, true))
	}
}

func TestDisplay(t *testing.T) {
	var out bytes.Buffer
	env := NewGlobalEnvironment(StandardPrimitives(&out))
	for _, src := range []string{
		"(display 'hello world')",
		"(newline)",
		"(display (list 1 'two' (quote three)))",
	} {
		got, err := evalString(env, src)
		if err != nil {
			t.Fatal(err)
		}
		if got != Value(Void) {
			t.Errorf("%s = %s; want void", src, Stringify(got, true))
		}
	}
	if s, want := out.String(), "hello world\n(1 two three)"; s != want {
		t.Errorf("output %q; want %q", s, want)
	}
}

func TestGlobalEnvironment(t *testing.T) {
	prims := map[string]*Primitive{
		"answer": {"answer", func([]Value) (Value, error) { return Int(42), nil }},
	}
	env := NewGlobalEnvironment(prims)
	got, err := evalString(env, "(answer)")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(got, Int(42)) {
		t.Errorf("(answer) = %s", Stringify(got, true))
	}
	if env.Parent() != nil {
		t.Error("global environment has a parent")
	}
	if _, err := evalString(env, "car"); err == nil {
		t.Error("car is bound without the standard table")
	}
}
