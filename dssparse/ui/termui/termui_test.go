package termui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dss.cli")
	defer teardown()
	//
	tw := NewTable("#", "Value")
	tw.AppendRow([]interface{}{1, "Line.L1"})
	for _, x := range []struct {
		item interface{}
		out  string
	}{
		{"hello", "▶ hello"},
		{2.5, "▶ 2.5"},
		{errors.New("boom"), "boom"},
		{tw, "Line.L1"},
		{struct{}{}, "object of type struct {}"},
	} {
		var buf bytes.Buffer
		ok, err := DefaultFormatter{}.Format(x.item, &buf)
		if !ok || err != nil {
			t.Errorf("formatter refused %v: %v", x.item, err)
		}
		if !strings.Contains(buf.String(), x.out) {
			t.Errorf("expected output to contain %q, have %q", x.out, buf.String())
		}
	}
	if ok, _ := (DefaultFormatter{}).Format(nil, &bytes.Buffer{}); ok {
		t.Errorf("expected formatter to refuse nil")
	}
}
