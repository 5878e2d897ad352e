package rpn

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// OpCode identifies a calculator operation reachable from inline math.
type OpCode uint8

const (
	OpNop OpCode = iota

	OpAdd      // +
	OpSubtract // -
	OpMultiply // *
	OpDivide   // /
	OpPower    // ^
	OpATan2    // atan2

	OpSqrt  // sqrt
	OpSqr   // sqr
	OpInv   // inv
	OpSin   // sin
	OpCos   // cos
	OpTan   // tan
	OpASin  // asin
	OpACos  // acos
	OpATan  // atan
	OpLn    // ln
	OpLog10 // log10
	OpExp   // exp

	OpPi     // pi
	OpSwap   // swap
	OpRollUp // rollup
	OpRollDn // rolldn
)

// keywords maps the case-folded inline math keywords to operations.
var keywords = map[string]OpCode{
	"+":      OpAdd,
	"-":      OpSubtract,
	"*":      OpMultiply,
	"/":      OpDivide,
	"^":      OpPower,
	"atan2":  OpATan2,
	"sqrt":   OpSqrt,
	"sqr":    OpSqr,
	"inv":    OpInv,
	"sin":    OpSin,
	"cos":    OpCos,
	"tan":    OpTan,
	"asin":   OpASin,
	"acos":   OpACos,
	"atan":   OpATan,
	"ln":     OpLn,
	"log10":  OpLog10,
	"exp":    OpExp,
	"pi":     OpPi,
	"swap":   OpSwap,
	"rollup": OpRollUp,
	"rolldn": OpRollDn,
}

var opnames = func() map[OpCode]string {
	m := make(map[OpCode]string, len(keywords))
	for k, op := range keywords {
		m[op] = k
	}
	return m
}()

func (op OpCode) String() string {
	if name, ok := opnames[op]; ok {
		return name
	}
	if op == OpNop {
		return "nop"
	}
	return fmt.Sprintf("OpCode(%d)", uint8(op))
}

// ErrUnknownKeyword flags an inline math word which is neither a number nor
// a known operator keyword.
var ErrUnknownKeyword = errors.New("invalid inline math entry")

// KeywordError carries the offending word of an inline math expression.
type KeywordError struct {
	Word string
}

func (e *KeywordError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownKeyword.Error(), e.Word)
}

// Unwrap makes errors.Is(err, ErrUnknownKeyword) work.
func (e *KeywordError) Unwrap() error {
	return ErrUnknownKeyword
}

// Lookup finds the operation for a keyword. Matching is case-insensitive,
// i.e. "SQRT", "Sqrt" and "sqrt" are the same keyword.
func Lookup(keyword string) (OpCode, bool) {
	op, ok := keywords[cases.Fold().String(keyword)]
	return op, ok
}

// Keywords returns all known operator keywords, in no particular order.
func Keywords() []string {
	kw := make([]string, 0, len(keywords))
	for k := range keywords {
		kw = append(kw, k)
	}
	return kw
}

// Execute performs a single operation on the calculator.
func (c *Calculator) Execute(op OpCode) {
	tracer().Debugf("rpn execute %s", op)
	switch op {
	case OpAdd:
		c.Add()
	case OpSubtract:
		c.Subtract()
	case OpMultiply:
		c.Multiply()
	case OpDivide:
		c.Divide()
	case OpPower:
		c.YToTheXPower()
	case OpATan2:
		c.ATan2Deg()
	case OpSqrt:
		c.Sqrt()
	case OpSqr:
		c.Square()
	case OpInv:
		c.Inv()
	case OpSin:
		c.SinDeg()
	case OpCos:
		c.CosDeg()
	case OpTan:
		c.TanDeg()
	case OpASin:
		c.ASinDeg()
	case OpACos:
		c.ACosDeg()
	case OpATan:
		c.ATanDeg()
	case OpLn:
		c.NatLog()
	case OpLog10:
		c.TenLog()
	case OpExp:
		c.EToTheX()
	case OpPi:
		c.EnterPi()
	case OpSwap:
		c.SwapXY()
	case OpRollUp:
		c.RollUp()
	case OpRollDn:
		c.RollDown()
	}
}

// Command interprets a single inline math word: numbers are pushed, keywords
// are executed.
func (c *Calculator) Command(word string) error {
	if v, ok := ParseNumber(word); ok {
		c.SetX(v)
		return nil
	}
	op, ok := Lookup(word)
	if !ok {
		tracer().Errorf("unknown inline math keyword %q", word)
		return &KeywordError{Word: word}
	}
	c.Execute(op)
	return nil
}
