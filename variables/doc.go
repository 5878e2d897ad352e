/*
Package variables implements the variable table of the DSS command
language.

Variables are simple things here, compared to the tokenizer which
consults them. A variable is a name, starting with the sigil '@', and a
string value:

   var @kv=12.47 @bus=Sourcebus.1.2.3

Wherever a parameter value starts with a variable name, the tokenizer
replaces the name by the value. The name extends up to the first '^' or,
failing that, the first '.', so

   bus1=@bus.1    ⟹  bus1=Sourcebus.1.2.3.1

Substitution is not recursive. If a value itself contains the sigil, it is
stored wrapped in braces ("{...}"), which marks it as a literal. The
tokenizer will insert the braced text verbatim and flag the token as
quoted, i.e. the text of a literal never gets expanded a second time.

A table is created with a set of intrinsic variables, all with a value
of "null":

   @lastfile  @lastexportfile  @lastshowfile  @lastplotfile
   @lastredirectfile  @lastcompilefile  @result

The table keeps an "active variable" cursor. Lookup positions the cursor,
Value and SetValue operate on whatever variable the cursor addresses.


BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package variables

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dss.variables'
func tracer() tracing.Trace {
	return tracing.Select("dss.variables")
}
