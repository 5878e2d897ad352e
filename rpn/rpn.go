package rpn

import (
	"fmt"
	"math"
	"strings"
)

// StackSize is the fixed number of registers of a Calculator.
const StackSize = 10

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// Calculator is a fixed-size RPN register stack.
//
// The zero value is a calculator with all registers set to 0, ready to use.
// A Calculator is not safe for concurrent use.
type Calculator struct {
	stack [StackSize]float64 // stack[0] is X, stack[1] is Y, stack[2] is Z
}

// NewCalculator creates a calculator with all registers cleared.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// X returns the top register.
func (c *Calculator) X() float64 {
	return c.stack[0]
}

// Y returns the second register.
func (c *Calculator) Y() float64 {
	return c.stack[1]
}

// Z returns the third register.
func (c *Calculator) Z() float64 {
	return c.stack[2]
}

// Register returns register i, with 0 being the top. Will panic if i is
// out of range.
func (c *Calculator) Register(i int) float64 {
	return c.stack[i]
}

// Registers returns a copy of all registers, top first.
func (c *Calculator) Registers() [StackSize]float64 {
	return c.stack
}

// SetX pushes an operand: all registers age by one slot, the bottom value
// drops out, and v becomes the new X.
func (c *Calculator) SetX(v float64) {
	c.RollUp()
	c.stack[0] = v
}

// SetY overwrites Y without shifting.
func (c *Calculator) SetY(v float64) {
	c.stack[1] = v
}

// SetZ overwrites Z without shifting.
func (c *Calculator) SetZ(v float64) {
	c.stack[2] = v
}

// Clear sets all registers to 0.
func (c *Calculator) Clear() {
	c.stack = [StackSize]float64{}
}

// --- Binary operations -----------------------------------------------------

// Binary operations store their result in Y and then roll down, so the
// result ends up in X.

// Add computes Y + X.
func (c *Calculator) Add() {
	c.stack[1] = c.stack[0] + c.stack[1]
	c.RollDown()
}

// Subtract computes Y - X.
func (c *Calculator) Subtract() {
	c.stack[1] = c.stack[1] - c.stack[0]
	c.RollDown()
}

// Multiply computes Y * X.
func (c *Calculator) Multiply() {
	c.stack[1] = c.stack[1] * c.stack[0]
	c.RollDown()
}

// Divide computes Y / X.
func (c *Calculator) Divide() {
	c.stack[1] = c.stack[1] / c.stack[0]
	c.RollDown()
}

// YToTheXPower computes Y ^ X.
func (c *Calculator) YToTheXPower() {
	c.stack[1] = math.Pow(c.stack[1], c.stack[0])
	c.RollDown()
}

// ATan2Deg computes atan2(Y, X) in degrees.
func (c *Calculator) ATan2Deg() {
	c.stack[1] = radToDeg * math.Atan2(c.stack[1], c.stack[0])
	c.RollDown()
}

// --- Unary operations ------------------------------------------------------

// Sqrt replaces X by its square root.
func (c *Calculator) Sqrt() {
	c.stack[0] = math.Sqrt(c.stack[0])
}

// Square replaces X by X*X.
func (c *Calculator) Square() {
	c.stack[0] = c.stack[0] * c.stack[0]
}

// Inv replaces X by 1/X.
func (c *Calculator) Inv() {
	c.stack[0] = 1.0 / c.stack[0]
}

// SinDeg replaces X (in degrees) by its sine.
func (c *Calculator) SinDeg() {
	c.stack[0] = math.Sin(degToRad * c.stack[0])
}

// CosDeg replaces X (in degrees) by its cosine.
func (c *Calculator) CosDeg() {
	c.stack[0] = math.Cos(degToRad * c.stack[0])
}

// TanDeg replaces X (in degrees) by its tangent.
func (c *Calculator) TanDeg() {
	c.stack[0] = math.Tan(degToRad * c.stack[0])
}

// ASinDeg replaces X by its arc sine, in degrees.
func (c *Calculator) ASinDeg() {
	c.stack[0] = radToDeg * math.Asin(c.stack[0])
}

// ACosDeg replaces X by its arc cosine, in degrees.
func (c *Calculator) ACosDeg() {
	c.stack[0] = radToDeg * math.Acos(c.stack[0])
}

// ATanDeg replaces X by its arc tangent, in degrees.
func (c *Calculator) ATanDeg() {
	c.stack[0] = radToDeg * math.Atan(c.stack[0])
}

// NatLog replaces X by ln(X).
func (c *Calculator) NatLog() {
	c.stack[0] = math.Log(c.stack[0])
}

// TenLog replaces X by log10(X).
func (c *Calculator) TenLog() {
	c.stack[0] = math.Log10(c.stack[0])
}

// EToTheX replaces X by e^X.
func (c *Calculator) EToTheX() {
	c.stack[0] = math.Exp(c.stack[0])
}

// --- Stack manipulation ----------------------------------------------------

// EnterPi pushes π.
func (c *Calculator) EnterPi() {
	c.SetX(math.Pi)
}

// SwapXY exchanges X and Y.
func (c *Calculator) SwapXY() {
	c.stack[0], c.stack[1] = c.stack[1], c.stack[0]
}

// RollUp moves every register one slot towards the bottom. The bottom value
// is lost and X keeps its value.
func (c *Calculator) RollUp() {
	for i := StackSize - 1; i > 0; i-- {
		c.stack[i] = c.stack[i-1]
	}
}

// RollDown moves every register one slot towards the top. X is lost and
// the bottom register keeps its value.
func (c *Calculator) RollDown() {
	for i := 1; i < StackSize; i++ {
		c.stack[i-1] = c.stack[i]
	}
}

func (c *Calculator) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range c.stack {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteString("]")
	return b.String()
}
