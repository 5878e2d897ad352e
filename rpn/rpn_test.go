package rpn

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const epsilon = 1e-10

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNewCalculatorIsCleared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	c := NewCalculator()
	for i, v := range c.Registers() {
		if v != 0 {
			t.Errorf("expected register %d to be 0, is %g", i, v)
		}
	}
}

func TestSetXAgesValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	c := NewCalculator()
	c.SetX(5)
	c.SetX(3)
	if c.X() != 3 || c.Y() != 5 {
		t.Errorf("expected X=3, Y=5, have X=%g, Y=%g", c.X(), c.Y())
	}
	c.SetY(10)
	c.SetZ(20)
	if c.X() != 3 || c.Y() != 10 || c.Z() != 20 {
		t.Errorf("expected direct setters not to shift, have %s", c)
	}
}

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	for i, x := range []struct {
		y, x float64
		op   func(*Calculator)
		r    float64
	}{
		{5, 3, (*Calculator).Add, 8},
		{10, 4, (*Calculator).Subtract, 6},
		{7, 8, (*Calculator).Multiply, 56},
		{20, 4, (*Calculator).Divide, 5},
		{2, 3, (*Calculator).YToTheXPower, 8},
		{3, 4, (*Calculator).YToTheXPower, 81},
		{0, 0, (*Calculator).YToTheXPower, 1},
	} {
		c := NewCalculator()
		c.SetX(x.y)
		c.SetX(x.x)
		x.op(c)
		if c.X() != x.r {
			t.Errorf("test %d: expected %g, have %g", i, x.r, c.X())
		}
	}
}

func TestBinaryOpCollapsesStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	c := NewCalculator()
	for i := 1; i <= StackSize; i++ {
		c.SetX(float64(i))
	}
	c.Add() // 10 + 9
	if c.X() != 19 || c.Y() != 8 {
		t.Errorf("expected X=19, Y=8, have %s", c)
	}
	// bottom register is duplicated, not cleared
	if c.Register(StackSize-1) != 1 || c.Register(StackSize-2) != 1 {
		t.Errorf("expected bottom registers to be 1, have %s", c)
	}
}

func TestUnaryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	for i, x := range []struct {
		in float64
		op func(*Calculator)
		r  float64
	}{
		{25, (*Calculator).Sqrt, 5},
		{0, (*Calculator).Sqrt, 0},
		{6, (*Calculator).Square, 36},
		{0.5, (*Calculator).Inv, 2},
		{4, (*Calculator).Inv, 0.25},
		{30, (*Calculator).SinDeg, 0.5},
		{90, (*Calculator).SinDeg, 1},
		{60, (*Calculator).CosDeg, 0.5},
		{90, (*Calculator).CosDeg, 0},
		{45, (*Calculator).TanDeg, 1},
		{0.5, (*Calculator).ASinDeg, 30},
		{1, (*Calculator).ASinDeg, 90},
		{0.5, (*Calculator).ACosDeg, 60},
		{0, (*Calculator).ACosDeg, 90},
		{1, (*Calculator).ATanDeg, 45},
		{math.E, (*Calculator).NatLog, 1},
		{1, (*Calculator).NatLog, 0},
		{100, (*Calculator).TenLog, 2},
		{0, (*Calculator).EToTheX, 1},
		{2, (*Calculator).EToTheX, 7.38905609893065},
	} {
		c := NewCalculator()
		c.SetX(42) // must stay untouched in Y
		c.SetX(x.in)
		x.op(c)
		if !near(c.X(), x.r) {
			t.Errorf("test %d: expected %g, have %g", i, x.r, c.X())
		}
		if c.Y() != 42 {
			t.Errorf("test %d: unary operation changed Y to %g", i, c.Y())
		}
	}
}

func TestDomainErrorsDoNotFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	c := NewCalculator()
	c.SetX(-1)
	c.Sqrt()
	if !math.IsNaN(c.X()) {
		t.Errorf("expected sqrt(-1) to be NaN, is %g", c.X())
	}
	c.SetX(1)
	c.SetX(0)
	c.Divide()
	if !math.IsInf(c.X(), 1) {
		t.Errorf("expected 1/0 to be +Inf, is %g", c.X())
	}
}

func TestATan2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	for i, x := range []struct {
		y, x, r float64
	}{
		{1, 1, 45},
		{1, 0, 90},
		{0, 1, 0},
	} {
		c := NewCalculator()
		c.SetX(7)
		c.SetX(x.y)
		c.SetX(x.x)
		c.ATan2Deg()
		if !near(c.X(), x.r) {
			t.Errorf("test %d: expected %g, have %g", i, x.r, c.X())
		}
		if c.Y() != 7 {
			t.Errorf("test %d: expected atan2 to collapse the stack, Y is %g", i, c.Y())
		}
	}
}

func TestRollDownRollUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	c := NewCalculator()
	c.SetX(1)
	c.SetX(2)
	c.SetX(3)
	c.RollDown()
	if c.X() != 2 || c.Y() != 1 || c.Z() != 0 {
		t.Errorf("expected roll down to give 2,1,0, have %s", c)
	}
	c.RollUp()
	if c.X() != 2 || c.Y() != 2 || c.Z() != 1 {
		t.Errorf("expected roll up to give 2,2,1, have %s", c)
	}
	c = NewCalculator()
	c.SetX(1)
	c.SetX(2)
	c.SetX(3)
	c.RollUp()
	c.RollDown()
	if c.X() != 3 || c.Y() != 2 || c.Z() != 1 {
		t.Errorf("expected roll up/down to restore 3,2,1, have %s", c)
	}
}

func TestStackDepthIsFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	c := NewCalculator()
	for i := 1; i <= StackSize+2; i++ {
		c.SetX(float64(i))
	}
	if c.X() != 12 || c.Register(StackSize-1) != 3 {
		t.Errorf("expected values 1 and 2 to have dropped out, have %s", c)
	}
	c = NewCalculator()
	for i := 1; i <= StackSize; i++ {
		c.SetX(float64(i))
	}
	for i := 0; i < 7; i++ {
		c.RollDown()
	}
	if c.X() != 3 || c.Y() != 2 || c.Z() != 1 {
		t.Errorf("expected 3,2,1 after 7 roll downs, have %s", c)
	}
}

func TestSwapAndPi(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	c := NewCalculator()
	c.SetX(5)
	c.SetX(10)
	c.SwapXY()
	if c.X() != 5 || c.Y() != 10 || c.Z() != 0 {
		t.Errorf("expected swap to give 5,10,0, have %s", c)
	}
	c.EnterPi()
	c.EnterPi()
	if !near(c.X(), math.Pi) || !near(c.Y(), math.Pi) || c.Z() != 5 {
		t.Errorf("expected π,π,5, have %s", c)
	}
}

func TestTrigIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	c := NewCalculator()
	c.SetX(30)
	c.SinDeg()
	c.Square()
	c.SetX(30)
	c.CosDeg()
	c.Square()
	c.Add()
	if math.Abs(c.X()-1) > 1e-9 {
		t.Errorf("expected sin²+cos² = 1, have %g", c.X())
	}
}

func TestPythagoras(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.rpn")
	defer teardown()
	//
	c := NewCalculator()
	c.SetX(3)
	c.Square()
	c.SetX(4)
	c.Square()
	if c.X() != 16 || c.Y() != 9 || c.Z() != 0 {
		t.Fatalf("expected 16,9,0, have %s", c)
	}
	c.Add()
	c.Sqrt()
	if c.X() != 5 || c.Y() != 0 {
		t.Errorf("expected 5,0, have %s", c)
	}
}
