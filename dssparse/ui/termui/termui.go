// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'dss.cli'.
func trace() tracing.Trace {
	return tracing.Select("dss.cli")
}

// Formatter writes interpreter results to an output. It returns false if it
// does not know how to display item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter displays strings, numbers, errors and tables.
type DefaultFormatter struct{}

// Format writes item to w. A nil item is refused, every other item is
// displayed, at least by its type.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		_, err := fmt.Fprintf(w, "▶ %s\n", t)
		return true, err
	case float64:
		_, err := fmt.Fprintf(w, "▶ %s\n", strconv.FormatFloat(t, 'g', -1, 64))
		return true, err
	case error:
		_, err := fmt.Fprintf(w, "▶ %s\n", prtxt.FgRed.Sprint(t.Error()))
		return true, err
	case table.Writer:
		_, err := io.WriteString(w, t.Render()+"\n")
		return true, err
	case nil:
		return false, nil
	default:
		_, err := fmt.Fprintf(w, "▶ object of type %T\n", t)
		return true, err
	}
}

// NewTable creates a table writer with a header row, in the style all
// interpreter output uses.
func NewTable(header ...interface{}) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row(header))
	return tw
}
