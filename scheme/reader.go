package scheme

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nukata/goarith"
)

// ReadValue reads one expression from src, which must be a string or
// a []byte.
func ReadValue(src interface{}) (Value, error) {
	switch s := src.(type) {
	case string:
		return Read(s)
	case []byte:
		return Read(string(s))
	}
	return nil, &TypeError{src}
}

// Read reads exactly one expression from text.
func Read(text string) (Value, error) {
	exprs, err := ReadAll(text)
	if err != nil {
		return nil, err
	}
	switch len(exprs) {
	case 0:
		return nil, &ParseError{Message: "no expression"}
	case 1:
		return exprs[0], nil
	}
	return nil, &ParseError{Message: "unexpected text after " +
		Stringify(exprs[0], true)}
}

// ReadAll reads all the expressions in text, e.g. the contents of a file.
func ReadAll(text string) ([]Value, error) {
	result := make([]Value, 0, 10)
	rest := text
	for {
		x, r, err := consumeNext(rest)
		if err != nil {
			return nil, err
		}
		if x == nil {
			return result, nil
		}
		result = append(result, x)
		rest = r
	}
}

// consumeNext reads the next element of rest and returns it with the
// remaining text. It returns a nil Value when rest is exhausted.
func consumeNext(rest string) (Value, string, error) {
	rest = skipSpace(rest)
	if rest == "" {
		return nil, "", nil
	}
	switch rest[0] {
	case '(':
		end, err := matchParen(rest)
		if err != nil {
			return nil, "", err
		}
		list, err := readList(rest[1:end])
		if err != nil {
			return nil, "", err
		}
		return list, rest[end+1:], nil
	case ')':
		return nil, "", &ParseError{Message: "unexpected )"}
	}
	n := atomLength(rest)
	return classify(rest[:n]), rest[n:], nil
}

// readList reads the text between a pair of matching parentheses.
func readList(inner string) (List, error) {
	list := make(List, 0, 4)
	for {
		x, r, err := consumeNext(inner)
		if err != nil {
			return nil, err
		}
		if x == nil {
			return list, nil
		}
		list = append(list, x)
		inner = r
	}
}

// matchParen returns the index of the ")" which closes the "(" at s[0].
// Parentheses within string literals and comments are not counted.
func matchParen(s string) (int, error) {
	depth := 0
	atTokenStart := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		case r == ';':
			j := strings.IndexByte(s[i:], '\n')
			if j < 0 {
				i = len(s)
				continue
			}
			size = j + 1
		case unicode.IsSpace(r):
		case isQuote(r) && atTokenStart:
			if j := strings.IndexByte(s[i+1:], byte(r)); j >= 0 {
				size = j + 2
			} else { // a lone quote is part of an ordinary atom
				atTokenStart = false
				i += size
				continue
			}
		default:
			atTokenStart = false
			i += size
			continue
		}
		atTokenStart = true
		i += size
	}
	return 0, &ParseError{"couldn't match parenthesis", true}
}

// atomLength returns the length of the atom at the head of s.
// A quoted literal runs to its closing quote and may contain spaces;
// any other atom ends at a space, a parenthesis or a comment.
func atomLength(s string) int {
	if q := rune(s[0]); isQuote(q) {
		if j := strings.IndexByte(s[1:], s[0]); j >= 0 {
			return j + 2
		}
	}
	i := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == ')' || r == ';'
	})
	if i < 0 {
		return len(s)
	}
	return i
}

// skipSpace drops leading white space and ;-comments.
func skipSpace(s string) string {
	for {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if !strings.HasPrefix(s, ";") {
			return s
		}
		j := strings.IndexByte(s, '\n')
		if j < 0 {
			return ""
		}
		s = s[j:]
	}
}

func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

// classify turns an atom token into a String, a Number or a Symbol.
func classify(token string) Value {
	if n := len(token); n >= 2 {
		if q := token[0]; (q == '"' || q == '\'') && token[n-1] == q {
			return String(token[1 : n-1])
		}
	}
	if n, ok := tryToReadNumber(token); ok {
		return n
	}
	return Intern(token)
}

func tryToReadNumber(s string) (Number, bool) {
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsLetter(r) {
		return Number{}, false
	}
	z := new(big.Int)
	if _, ok := z.SetString(s, 0); ok {
		return Number{goarith.AsNumber(z)}, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil &&
		!math.IsInf(f, 0) && !math.IsNaN(f) {
		return Number{goarith.AsNumber(f)}, true
	}
	return Number{}, false
}
