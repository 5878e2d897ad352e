/*
Package parser implements the command line tokenizer of the DSS command
language.

A command line is a sequence of parameters, each either a bare value or a
name=value pair:

   New Line.L1 bus1=Sourcebus bus2=LoadBus.1.2 length=(2.5 1.2 *) ! feeder

Clients load one line with SetCmdString and then call NextParam repeatedly.
NextParam returns the parameter name (or "" for a bare value); the value is
available from Token and the conversion functions MakeString, MakeInteger,
MakeDouble, ParseAsVector, ParseAsMatrix and ParseAsBusName.

Lexical rules

Tokens are delimited by whitespace (default " \t"), separators (default
",=") and comments ('!' or "//"). A comment discards the rest of the line.
A token starting with a quote-open character extends up to the
quote-close character at the same position in the quote-close set, or to the
end of the line. Quoted spans are taken verbatim, including delimiters and
comment characters. Quote pairing is by position, not by character: with
the default sets

   open:   (  "  '  [  {
   close:  )  }  '  ]

a double quote is closed by '}', and '{' has no closing character at all.

Quoted values are evaluated as inline math (see package rpn) when a number
is requested:

   kV=(12.47 3 sqrt /)   ⟹  7.2

Variables

If a parser has a variable resolver (see SetVars), every value token
starting with '@' is checked against it and replaced by the variable's value.
See package variables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dss.parser'
func tracer() tracing.Trace {
	return tracing.Select("dss.parser")
}
