package parser

import (
	"errors"
	"testing"

	"github.com/npillmayer/dssparse/rpn"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConversionErrorCarriesText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.parser")
	defer teardown()
	//
	p := New()
	p.SetCmdString("kv=twelve")
	p.NextParam()
	_, err := p.MakeDouble()
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected conversion error, have %v", err)
	}
	var cerr *ConversionError
	if !errors.As(err, &cerr) || cerr.Text != "twelve" || cerr.Kind != "Floating point" {
		t.Errorf("expected error to carry 'twelve', have %v", err)
	}
}

func TestInlineMathError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.parser")
	defer teardown()
	//
	p := New()
	p.SetCmdString("kv=(1 foo +)")
	p.NextParam()
	_, err := p.MakeDouble()
	if !errors.Is(err, rpn.ErrUnknownKeyword) {
		t.Fatalf("expected unknown keyword error, have %v", err)
	}
	if !p.ConvertError() {
		t.Error("expected convert error flag to be set")
	}
	if _, err = p.MakeInteger(); !errors.Is(err, rpn.ErrUnknownKeyword) {
		t.Errorf("expected unknown keyword error for integer, have %v", err)
	}
}
