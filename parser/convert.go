package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/dssparse/rpn"
)

// MakeString returns the current value as is.
func (p *Parser) MakeString() string {
	if p.autoIncrement {
		p.NextParam()
	}
	return p.tokenBuffer
}

// MakeInteger converts the current value to an integer. Floating point
// values are rounded, quoted values are evaluated as inline math.
// An empty value converts to 0.
func (p *Parser) MakeInteger() (int, error) {
	p.convertError = false
	if p.autoIncrement {
		p.NextParam()
	}
	if p.tokenBuffer == "" {
		return 0, nil
	}
	if p.isQuotedString {
		v, err := p.InterpretRPNString()
		if err != nil {
			p.convertError = true
			return 0, err
		}
		return p.roundToInt(v)
	}
	if i, err := strconv.Atoi(p.tokenBuffer); err == nil {
		return i, nil
	}
	if v, ok := rpn.ParseNumber(p.tokenBuffer); ok {
		return p.roundToInt(v)
	}
	p.convertError = true
	tracer().Errorf("cannot convert %q to integer", p.tokenBuffer)
	return 0, &ConversionError{Kind: "Integer", Text: p.tokenBuffer}
}

// intLimit is 2^(bits-1): valid ints are in [-intLimit, intLimit).
var intLimit = math.Ldexp(1, strconv.IntSize-1)

// roundToInt rounds half away from zero. NaN and values outside the range
// of int are conversion errors.
func (p *Parser) roundToInt(v float64) (int, error) {
	r := math.Round(v)
	if math.IsNaN(r) || r < -intLimit || r >= intLimit {
		p.convertError = true
		tracer().Errorf("%g out of integer range", v)
		return 0, &ConversionError{Kind: "Integer", Text: p.tokenBuffer}
	}
	return int(r), nil
}

// MakeDouble converts the current value to a float64. Quoted values are
// evaluated as inline math. An empty value converts to 0.
func (p *Parser) MakeDouble() (float64, error) {
	p.convertError = false
	if p.autoIncrement {
		p.NextParam()
	}
	if p.tokenBuffer == "" {
		return 0, nil
	}
	v, err := p.value(p.tokenBuffer, p.isQuotedString)
	if err != nil {
		p.convertError = true
	}
	return v, err
}

// InterpretRPNString evaluates the current value as inline math on the
// parser's calculator and returns the calculator's X register.
func (p *Parser) InterpretRPNString() (float64, error) {
	return p.calc.Interpret(p.tokenBuffer)
}

func (p *Parser) value(text string, quoted bool) (float64, error) {
	if quoted {
		return p.calc.Interpret(text)
	}
	if v, ok := rpn.ParseNumber(text); ok {
		return v, nil
	}
	tracer().Errorf("cannot convert %q to float", text)
	return 0, &ConversionError{Kind: "Floating point", Text: text}
}

// --- Vectors and matrices --------------------------------------------------

type element struct {
	text   string
	quoted bool
}

// elementRows splits the current value into rows of elements. Elements are
// separated by whitespace or separators, rows by the matrix row terminator.
// Every element is subject to variable substitution, and quoted elements are
// flagged for inline math.
func (p *Parser) elementRows() [][]element {
	sub := &Parser{
		vars:          p.vars,
		delimChars:    p.delimChars + string(p.rowTerminator),
		whitespace:    p.whitespace,
		beginQuotes:   p.beginQuotes,
		endQuotes:     p.endQuotes,
		rowTerminator: p.rowTerminator,
		lastDelimiter: ' ',
		calc:          p.calc,
	}
	sub.SetCmdString(p.tokenBuffer)
	var rows [][]element
	var row []element
	for sub.position < len(sub.cmdBuffer) {
		sub.NextParam()
		if sub.tokenBuffer != "" {
			row = append(row, element{text: sub.tokenBuffer, quoted: sub.isQuotedString})
		}
		if sub.lastDelimiter == p.rowTerminator {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// ParseAsVector converts the current value to a vector of size elements.
// Parsing stops at the matrix row terminator. The number of elements found
// is returned as well and may exceed size; excess elements are dropped.
// A negative size is taken as 0.
//
//     "[1 2 3]"  ⟹  [1 2 3], 3
//
func (p *Parser) ParseAsVector(size int) ([]float64, int, error) {
	p.convertError = false
	if p.autoIncrement {
		p.NextParam()
	}
	if size < 0 {
		size = 0
	}
	vec := make([]float64, size)
	rows := p.elementRows()
	if len(rows) == 0 {
		return vec, 0, nil
	}
	for i, e := range rows[0] {
		if i >= size {
			break
		}
		v, err := p.value(e.text, e.quoted)
		if err != nil {
			p.convertError = true
			return vec, len(rows[0]), err
		}
		vec[i] = v
	}
	return vec, len(rows[0]), nil
}

// ParseAsMatrix converts the current value to a square matrix of the given
// order, returned in row-major order. Rows are separated by the matrix row
// terminator:
//
//     "[1 2 | 3 4]"  ⟹  [1 2 3 4]
//
// Without any row terminator the elements fill the matrix row by row.
// Missing elements are 0. A negative order is taken as 0.
func (p *Parser) ParseAsMatrix(order int) ([]float64, error) {
	return p.parseMatrix(order, false)
}

// ParseAsSymMatrix converts the lower triangle of a symmetric matrix,
// given row by row, to a full square matrix in row-major order:
//
//     "[1 | 2 3]"  ⟹  [1 2 2 3]
//
func (p *Parser) ParseAsSymMatrix(order int) ([]float64, error) {
	return p.parseMatrix(order, true)
}

func (p *Parser) parseMatrix(order int, symmetric bool) ([]float64, error) {
	p.convertError = false
	if p.autoIncrement {
		p.NextParam()
	}
	if order < 0 {
		order = 0
	}
	m := make([]float64, order*order)
	rows := p.elementRows()
	rowlen := func(i int) int {
		if symmetric {
			return i + 1
		}
		return order
	}
	if len(rows) == 1 { // re-arrange a flat list into rows
		flat := rows[0]
		rows = nil
		for i := 0; i < order && len(flat) > 0; i++ {
			n := rowlen(i)
			if n > len(flat) {
				n = len(flat)
			}
			rows = append(rows, flat[:n])
			flat = flat[n:]
		}
	}
	for i := 0; i < order && i < len(rows); i++ {
		for j, e := range rows[i] {
			if j >= rowlen(i) {
				break
			}
			v, err := p.value(e.text, e.quoted)
			if err != nil {
				p.convertError = true
				return m, err
			}
			m[i*order+j] = v
			if symmetric {
				m[j*order+i] = v
			}
		}
	}
	return m, nil
}

// --- Bus names -------------------------------------------------------------

// ParseAsBusName splits the current value into a bus name and a list of
// node numbers. Nodes which are not integers are reported as -1.
//
//     "Bus1.1.2.3"  ⟹  "Bus1", [1 2 3]
//
func (p *Parser) ParseAsBusName() (string, []int) {
	if p.autoIncrement {
		p.NextParam()
	}
	dot := strings.IndexByte(p.tokenBuffer, '.')
	if dot < 0 {
		return strings.TrimSpace(p.tokenBuffer), nil
	}
	bus := strings.TrimSpace(p.tokenBuffer[:dot])
	var nodes []int
	for _, s := range strings.Split(p.tokenBuffer[dot+1:], ".") {
		n, err := strconv.Atoi(s)
		if err != nil {
			n = -1
		}
		nodes = append(nodes, n)
	}
	return bus, nodes
}
