package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/dssparse"
	"github.com/npillmayer/dssparse/dssparse/ui/termui"
	"github.com/npillmayer/dssparse/rpn"
	"github.com/npillmayer/dssparse/variables"
)

// ErrSyntax is returned for malformed builtin statements.
var ErrSyntax = errors.New("syntax error")

// interpreter evaluates one line at a time within a session and writes
// results to out.
type interpreter struct {
	session *dssparse.Session
	out     io.Writer
	format  termui.Formatter
}

func newInterpreter(session *dssparse.Session, out io.Writer) *interpreter {
	return &interpreter{
		session: session,
		out:     out,
		format:  termui.DefaultFormatter{},
	}
}

// Eval dispatches a line to a builtin statement or, for everything else,
// displays the line's parameters.
func (intp *interpreter) Eval(line string) error {
	line = strings.TrimSpace(line)
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}
	rest := strings.TrimSpace(line[len(words[0]):])
	switch strings.ToLower(words[0]) {
	case "define":
		return intp.define(rest)
	case "show":
		return intp.show(words[1:])
	case "calc":
		return intp.calc(rest)
	}
	return intp.tokenize(line)
}

func (intp *interpreter) emit(item interface{}) error {
	_, err := intp.format.Format(item, intp.out)
	return err
}

// define handles 'define @name value' and 'define @name=value'.
func (intp *interpreter) define(rest string) error {
	cut := strings.IndexAny(rest, " \t=")
	if cut < 0 {
		cut = len(rest)
	}
	name := rest[:cut]
	if len(name) < 2 || name[0] != variables.Sigil {
		return fmt.Errorf("%w: variable name must start with '%c', have %q",
			ErrSyntax, variables.Sigil, name)
	}
	value := strings.TrimLeft(rest[cut:], " \t")
	value = strings.TrimSpace(strings.TrimPrefix(value, "="))
	intp.session.Vars.Add(name, value)
	return intp.emit(intp.session.Vars.VarString(name))
}

func (intp *interpreter) show(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: show what? (variables | stack)", ErrSyntax)
	}
	switch strings.ToLower(args[0]) {
	case "variables", "vars":
		tw := termui.NewTable("Name", "Value")
		intp.session.Vars.Each(func(name, value string) {
			if value == "" {
				value = variables.NullValue
			}
			tw.AppendRow([]interface{}{name, value})
		})
		return intp.emit(tw)
	case "stack":
		tw := termui.NewTable("Register", "Value")
		for i, v := range intp.session.Calculator().Registers() {
			tw.AppendRow([]interface{}{registerName(i), v})
		}
		return intp.emit(tw)
	}
	return fmt.Errorf("%w: cannot show %q", ErrSyntax, args[0])
}

func registerName(i int) string {
	switch i {
	case 0:
		return "X"
	case 1:
		return "Y"
	case 2:
		return "Z"
	}
	return strconv.Itoa(i)
}

// calc evaluates an RPN expression on the session's calculator. Variables
// in the expression are substituted first. The result is stored in @result.
func (intp *interpreter) calc(expr string) error {
	params := intp.session.Params(expr)
	words := make([]string, 0, len(params))
	for _, p := range params {
		if p.Value != "" {
			words = append(words, p.Value)
		}
	}
	x, err := intp.session.Calculator().Interpret(strings.Join(words, " "))
	if err != nil {
		return err
	}
	intp.session.Vars.Add("@result", strconv.FormatFloat(x, 'g', -1, 64))
	return intp.emit(x)
}

// tokenize displays the parameters of a command line as a table.
func (intp *interpreter) tokenize(line string) error {
	tw := termui.NewTable("#", "Name", "Value", "Quoted", "Numeric")
	for i, p := range intp.session.Params(line) {
		tw.AppendRow([]interface{}{i + 1, p.Name, p.Value, p.Quoted, numeric(p)})
	}
	return intp.emit(tw)
}

// numeric displays the numeric interpretation of a parameter, if any.
// Quoted values are evaluated on a scratch calculator, leaving the
// session's register stack untouched.
func numeric(p dssparse.Param) string {
	if p.Quoted {
		if x, err := rpn.NewCalculator().Interpret(p.Value); err == nil {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
		return "–"
	}
	if x, ok := rpn.ParseNumber(p.Value); ok {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "–"
}
