// Package dssparse is a command line tokenizer with inline math for the DSS
// circuit description language.
//
// The work is done by three packages: parser (tokenizer and value
// conversion), variables (the variable table) and rpn (the inline-math
// register stack). This package ties them together into sessions and holds
// application-global state for the command line tool.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package dssparse

import (
	"context"
	"io"
	"os"
	"unicode/utf8"

	"github.com/knadh/koanf"
	"github.com/npillmayer/dssparse/parser"
	"github.com/npillmayer/dssparse/rpn"
	"github.com/npillmayer/dssparse/variables"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// Session is an interpreter session: a parser wired to its own variable
// table. Sessions do not share state, thus concurrent sessions are fine as
// long as every session stays on one goroutine.
type Session struct {
	Parser *parser.Parser
	Vars   *variables.Table
}

// NewSession creates a session with a fresh variable table. The parser is
// configured from the global Configuration, if present.
func NewSession() *Session {
	s := &Session{
		Parser: parser.New(),
		Vars:   variables.NewTable(),
	}
	s.Parser.SetVars(s.Vars)
	s.Parser.Configure(Configuration)
	return s
}

// Calculator returns the session's inline math calculator.
func (s *Session) Calculator() *rpn.Calculator {
	return s.Parser.Calculator()
}

// Param is a parameter of a command line.
type Param struct {
	Name   string // "" for positional parameters
	Value  string
	Quoted bool
}

// Params tokenizes a complete line. Empty values between delimiters are
// kept, except for one ending the line. Comments are dropped.
func (s *Session) Params(line string) []Param {
	var params []Param
	s.Parser.SetCmdString(line)
	end := utf8.RuneCountInString(line) + 1 // the parser appends a blank
	for s.Parser.Position() < end {
		name := s.Parser.NextParam()
		if name == "" && s.Parser.Token() == "" && s.Parser.Position() >= end {
			break // an empty value ending the line, e.g. before a comment
		}
		params = append(params, Param{
			Name:   name,
			Value:  s.Parser.Token(),
			Quoted: s.Parser.IsQuotedString(),
		})
	}
	return params
}
