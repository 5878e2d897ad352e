/*
Package rpn implements the inline-math calculator used for quoted parameter
values.

The calculator is a classic RPN register stack of exactly ten slots. The
top three slots are conventionally named X, Y and Z. There is no depth
counter: pushing an operand ages every value by one slot towards the
bottom, and whatever was in the bottom slot is lost. Binary operations
combine Y and X and collapse the stack upwards again. All trigonometric
functions work in degrees.

Nothing in this package ever fails on numeric grounds. Domain errors
(square root of a negative number, division by zero, …) produce NaN or ±Inf,
just as the underlying float64 arithmetic does. The only error condition is
an unknown keyword in an expression string handed to Interpret.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rpn

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dss.rpn'
func tracer() tracing.Trace {
	return tracing.Select("dss.rpn")
}
