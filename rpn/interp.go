package rpn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the inline math scanner.
const (
	tokNumber int = iota + 1
	tokWord
)

var (
	lexOnce   sync.Once // monitors one-time compilation of the DFA
	mathLexer *lexmachine.Lexer
	lexErr    error
)

// initLexer compiles the scanner for inline math. Words are separated by
// whitespace only; a word is either a number or an operator keyword.
// A NUMBER match wins over WORD only if it spans the complete word, thus
// "3abc" is a single (invalid) word, not a number followed by a keyword.
func initLexer() {
	lexOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`[\+\-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][\+\-]?[0-9]+)?`), makeToken(tokNumber))
		lexer.Add([]byte(`[^ \t\n\r]+`), makeToken(tokWord))
		if lexErr = lexer.Compile(); lexErr != nil {
			tracer().Errorf("cannot compile inline math scanner: %v", lexErr)
			return
		}
		mathLexer = lexer
	})
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// Words splits an inline math expression into its words.
func Words(expr string) ([]string, error) {
	var words []string
	err := scan(expr, func(_ int, word string) error {
		words = append(words, word)
		return nil
	})
	return words, err
}

func scan(expr string, f func(toktype int, word string) error) error {
	initLexer()
	if lexErr != nil {
		return lexErr
	}
	scanner, err := mathLexer.Scanner([]byte(expr))
	if err != nil {
		return err
	}
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			return fmt.Errorf("inline math %q: %w", expr, err)
		}
		token := tok.(*lexmachine.Token)
		if err = f(token.Type, token.Value.(string)); err != nil {
			return err
		}
	}
	return nil
}

// Interpret evaluates an inline math expression on the calculator, word by
// word, left to right, and returns X. Evaluation stops at the first word
// which is neither a number nor a keyword; the calculator keeps whatever
// state the preceding words produced.
//
// Example:
//
//     "3 sqr 4 sqr + sqrt"  ⟹  5
//
func (c *Calculator) Interpret(expr string) (float64, error) {
	tracer().Debugf("rpn interpret %q", expr)
	err := scan(expr, func(toktype int, word string) error {
		if toktype == tokNumber {
			if v, ok := ParseNumber(word); ok {
				c.SetX(v)
				return nil
			}
		}
		return c.Command(word)
	})
	return c.X(), err
}

// ParseNumber accepts decimal floating point numbers, including "inf" and
// "nan" spellings. Values out of range are accepted as ±Inf or 0.
func ParseNumber(s string) (float64, bool) {
	if strings.ContainsAny(s, "xX_") { // no hex floats, no digit separators
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
