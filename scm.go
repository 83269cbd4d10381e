// An eval/apply Scheme in Go, after the little Scheme by SUZUKI Hisao
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nukata/little-eval-apply/scheme"
	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
)

// Load loads a source code from a file.
func Load(fileName string, env *scheme.Environment) error {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	exprs, err := scheme.ReadAll(string(b))
	if err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	log.WithField("file", fileName).Debugf("loading %d expressions", len(exprs))
	for _, exp := range exprs {
		if _, err := scheme.Eval(exp, env); err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
	}
	return nil
}

// evalString reads and evaluates one expression and prints its value.
func evalString(src string, env *scheme.Environment, w io.Writer) error {
	exp, err := scheme.Read(src)
	if err != nil {
		return err
	}
	result, err := scheme.Eval(exp, env)
	if err != nil {
		return err
	}
	printResult(result, w)
	return nil
}

// printResult prints a value unless it is void or a confirmation.
func printResult(result scheme.Value, w io.Writer) {
	switch x := result.(type) {
	case scheme.VoidValue:
	case *scheme.Confirmation:
		log.WithField("form", x.Form.Name).Debugf("%s", x.Name.Name)
	default:
		fmt.Fprintln(w, scheme.Stringify(result, true))
	}
}

// ReadExpression reads lines until they make up an expression.
// It returns io.EOF at end of input.
func ReadExpression(line *liner.State, prompt1, prompt2 string) (scheme.Value, error) {
	var text strings.Builder
	prompt := prompt1
	for {
		s, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			text.Reset()
			prompt = prompt1
			continue
		}
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(s) == "" && text.Len() == 0 {
			continue
		}
		line.AppendHistory(s)
		text.WriteString(s)
		text.WriteByte('\n')
		exp, err := scheme.Read(text.String())
		var perr *scheme.ParseError
		if errors.As(err, &perr) && perr.Incomplete {
			prompt = prompt2
			continue
		}
		return exp, err
	}
}

// ReadEvalPrintLoop repeats read-eval-print until End-Of-File.
func ReadEvalPrintLoop(env *scheme.Environment) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	for {
		exp, err := ReadExpression(line, "> ", "| ")
		if err == io.EOF {
			fmt.Println("Goodbye")
			return
		}
		if err != nil {
			log.WithError(err).Error("read failed")
			continue
		}
		result, err := scheme.Eval(exp, env)
		if err != nil {
			log.WithError(err).Error("evaluation failed")
			continue
		}
		printResult(result, os.Stdout)
	}
}

func main() {
	verbose := flag.Bool("v", false, "log at debug level")
	expr := flag.String("e", "", "evaluate `expression` and print its value")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [-v] [-e expression] [file...] [-]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	env := scheme.NewGlobalEnvironment(scheme.StandardPrimitives(os.Stdout))
	args := flag.Args()
	repl := len(args) == 0 && *expr == ""
	if n := len(args); n > 0 && args[n-1] == "-" {
		args, repl = args[:n-1], true
	}
	for _, fileName := range args {
		if err := Load(fileName, env); err != nil {
			log.WithError(err).Fatal("load failed")
		}
	}
	if *expr != "" {
		if err := evalString(*expr, env, os.Stdout); err != nil {
			log.WithError(err).Fatal("evaluation failed")
		}
	}
	if repl {
		ReadEvalPrintLoop(env)
	}
}
