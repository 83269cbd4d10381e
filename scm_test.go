package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nukata/little-eval-apply/scheme"
)

func TestLoad(t *testing.T) {
	var out bytes.Buffer
	env := scheme.NewGlobalEnvironment(scheme.StandardPrimitives(&out))
	fileName := filepath.Join(t.TempDir(), "fact.scm")
	src := `; factorial
(define (fact n)
  (if (<= n 1) 1 (* n (fact (- n 1)))))
(display (fact 5))
`
	if err := os.WriteFile(fileName, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(fileName, env); err != nil {
		t.Fatal(err)
	}
	if s := out.String(); s != "120" {
		t.Errorf("output %q; want 120", s)
	}
}

func TestLoadReportsErrors(t *testing.T) {
	env := scheme.NewGlobalEnvironment(scheme.StandardPrimitives(&bytes.Buffer{}))
	fileName := filepath.Join(t.TempDir(), "bad.scm")
	if err := os.WriteFile(fileName, []byte("(define x 1)\n(set! y 2)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Load(fileName, env)
	var uerr *scheme.UndefinedError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v; want UndefinedError", err)
	}
	if _, err := env.Lookup(scheme.Intern("x")); err != nil {
		t.Error("expressions before the failing one were not evaluated")
	}
}

func TestEvalString(t *testing.T) {
	env := scheme.NewGlobalEnvironment(scheme.StandardPrimitives(&bytes.Buffer{}))
	for _, tt := range []struct {
		input string
		want  string
	}{
		{"(+ 1 2)", "3\n"},
		{"(define x 1)", ""},
		{"(if #f #f)", ""},
		{"(quote (a 'b c'))", "(a \"b c\")\n"},
	} {
		var out bytes.Buffer
		if err := evalString(tt.input, env, &out); err != nil {
			t.Errorf("%s: %v", tt.input, err)
			continue
		}
		if s := out.String(); s != tt.want {
			t.Errorf("%s printed %q; want %q", tt.input, s, tt.want)
		}
	}
}
