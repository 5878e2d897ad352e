package parser

import (
	"strings"

	"github.com/npillmayer/dssparse/rpn"
)

// Default delimiter configuration.
const (
	DefaultDelimiters          = ",="
	DefaultWhitespace          = " \t"
	DefaultBeginQuotes         = "(\"'[{"
	DefaultEndQuotes           = ")}']"
	DefaultMatrixRowTerminator = '|'
)

// CommentChar starts a comment. "//" starts a comment as well.
const CommentChar = '!'

// VariableResolver is the capability a parser needs to substitute variables.
// *variables.Table implements it.
type VariableResolver interface {
	Lookup(name string) bool // sets the active variable, if found
	Value() string           // value of the active variable
}

// Parser tokenizes one command line at a time.
//
// A Parser is not safe for concurrent use. Every interpreter session has to
// own its parser (together with its variable table and calculator).
type Parser struct {
	vars           VariableResolver // may be nil
	cmdBuffer      []rune
	position       int // index into cmdBuffer, never > len(cmdBuffer)
	paramBuffer    string
	tokenBuffer    string
	delimChars     string
	whitespace     string
	beginQuotes    []rune // n-th begin quote pairs with n-th end quote
	endQuotes      []rune
	lastDelimiter  rune
	rowTerminator  rune
	autoIncrement  bool
	convertError   bool
	isQuotedString bool
	calc           *rpn.Calculator
}

// New creates a parser with the default delimiter configuration and without
// a variable resolver.
func New() *Parser {
	p := &Parser{
		lastDelimiter: ' ',
		calc:          rpn.NewCalculator(),
	}
	p.ResetDelimiters()
	return p
}

// SetVars sets the variable resolver. vars may be nil, which switches
// variable substitution off.
func (p *Parser) SetVars(vars VariableResolver) {
	p.vars = vars
}

// Vars returns the variable resolver, which may be nil.
func (p *Parser) Vars() VariableResolver {
	return p.vars
}

// Calculator returns the calculator used for inline math. Its registers
// persist between lines.
func (p *Parser) Calculator() *rpn.Calculator {
	return p.calc
}

// SetCmdString loads a new command line and positions the cursor on its
// first non-whitespace character.
func (p *Parser) SetCmdString(line string) {
	p.cmdBuffer = []rune(line + " ") // trailing blank terminates the last token
	p.position = 0
	p.skipWhitespace()
	tracer().Debugf("command line = %q", line)
}

// ResetDelimiters restores the default delimiter configuration.
func (p *Parser) ResetDelimiters() {
	p.delimChars = DefaultDelimiters
	p.whitespace = DefaultWhitespace
	p.beginQuotes = []rune(DefaultBeginQuotes)
	p.endQuotes = []rune(DefaultEndQuotes)
	p.rowTerminator = DefaultMatrixRowTerminator
}

// NextParam advances to the next parameter and returns its name. If the
// parameter has no name, NextParam returns "". The value is available as
// Token. At the end of the line both name and value are "".
func (p *Parser) NextParam() string {
	if p.position < len(p.cmdBuffer) {
		p.lastDelimiter = ' '
		p.tokenBuffer = p.nextToken()
		if p.lastDelimiter == '=' {
			p.paramBuffer = p.tokenBuffer
			p.tokenBuffer = p.nextToken()
		} else {
			p.paramBuffer = ""
		}
	} else {
		p.paramBuffer = ""
		p.tokenBuffer = ""
		p.isQuotedString = false
	}
	p.checkForVar()
	tracer().Debugf("next param: %q = %q", p.paramBuffer, p.tokenBuffer)
	return p.paramBuffer
}

// nextToken scans one raw token, starting at the cursor.
func (p *Parser) nextToken() string {
	if p.position >= len(p.cmdBuffer) {
		return ""
	}
	p.isQuotedString = false
	if q := p.quoteIndex(p.cmdBuffer[p.position]); q >= 0 {
		return p.quotedToken(q)
	}
	start := p.position
	for p.position < len(p.cmdBuffer) && !p.isDelimiter(p.position) {
		p.position++
	}
	token := string(p.cmdBuffer[start:p.position])
	if p.position < len(p.cmdBuffer) {
		p.lastDelimiter = p.cmdBuffer[p.position]
		if p.isComment(p.position) {
			p.position = len(p.cmdBuffer) // ignore rest of line
		} else if p.isDelimChar(p.lastDelimiter) {
			p.position++
			p.skipWhitespace()
		} else {
			p.skipSeparator()
		}
	}
	return token
}

// quotedToken scans a token enclosed in the q-th quote pair. The cursor is
// on the opening quote.
func (p *Parser) quotedToken(q int) string {
	p.isQuotedString = true
	p.position++
	start := p.position
	if q < len(p.endQuotes) {
		endQuote := p.endQuotes[q]
		for p.position < len(p.cmdBuffer) && p.cmdBuffer[p.position] != endQuote {
			p.position++
		}
	} else { // no matching end quote configured
		p.position = len(p.cmdBuffer)
	}
	token := string(p.cmdBuffer[start:p.position])
	if p.position < len(p.cmdBuffer) {
		p.position++ // skip end quote
	}
	p.skipSeparator() // a separator may follow the closing quote, as in (a b)=…
	return token
}

// skipSeparator skips whitespace. If a separator follows, it becomes the
// last delimiter and is skipped too, together with trailing whitespace.
// Thus "bus1 = A" pairs like "bus1=A".
func (p *Parser) skipSeparator() {
	p.skipWhitespace()
	if p.position < len(p.cmdBuffer) && p.isDelimChar(p.cmdBuffer[p.position]) {
		p.lastDelimiter = p.cmdBuffer[p.position]
		p.position++
		p.skipWhitespace()
	}
}

func (p *Parser) quoteIndex(ch rune) int {
	for i, q := range p.beginQuotes {
		if q == ch {
			return i
		}
	}
	return -1
}

func (p *Parser) isWhitespace(ch rune) bool {
	return strings.ContainsRune(p.whitespace, ch)
}

func (p *Parser) isDelimChar(ch rune) bool {
	return strings.ContainsRune(p.delimChars, ch)
}

// isComment checks for '!' or "//" at position i. It never looks beyond the
// end of the buffer.
func (p *Parser) isComment(i int) bool {
	switch p.cmdBuffer[i] {
	case CommentChar:
		return true
	case '/':
		return i+1 < len(p.cmdBuffer) && p.cmdBuffer[i+1] == '/'
	}
	return false
}

func (p *Parser) isDelimiter(i int) bool {
	ch := p.cmdBuffer[i]
	return p.isComment(i) || p.isDelimChar(ch) || p.isWhitespace(ch)
}

func (p *Parser) skipWhitespace() {
	for p.position < len(p.cmdBuffer) && p.isWhitespace(p.cmdBuffer[p.position]) {
		p.position++
	}
}

// --- Accessors -------------------------------------------------------------

// Token returns the value of the current parameter.
func (p *Parser) Token() string {
	return p.tokenBuffer
}

// SetToken overwrites the value of the current parameter.
func (p *Parser) SetToken(token string) {
	p.tokenBuffer = token
}

// ParamName returns the name of the current parameter, or "".
func (p *Parser) ParamName() string {
	return p.paramBuffer
}

// IsQuotedString is true if the current value has been quoted or is the
// result of a literal variable substitution.
func (p *Parser) IsQuotedString() bool {
	return p.isQuotedString
}

// LastDelimiter returns the character which terminated the last raw token.
func (p *Parser) LastDelimiter() rune {
	return p.lastDelimiter
}

// Position returns the cursor position, as a character index.
func (p *Parser) Position() int {
	return p.position
}

// SetPosition moves the cursor. Positions beyond the end of the line are
// clipped.
func (p *Parser) SetPosition(pos int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(p.cmdBuffer) {
		pos = len(p.cmdBuffer)
	}
	p.position = pos
}

// Remainder returns the unparsed rest of the command line.
func (p *Parser) Remainder() string {
	if p.position < len(p.cmdBuffer) {
		return string(p.cmdBuffer[p.position:])
	}
	return ""
}

// Delimiters returns the separator characters.
func (p *Parser) Delimiters() string {
	return p.delimChars
}

// SetDelimiters sets the separator characters.
func (p *Parser) SetDelimiters(delims string) {
	p.delimChars = delims
}

// Whitespace returns the whitespace characters.
func (p *Parser) Whitespace() string {
	return p.whitespace
}

// SetWhitespace sets the whitespace characters.
func (p *Parser) SetWhitespace(ws string) {
	p.whitespace = ws
}

// BeginQuotes returns the quote-open characters.
func (p *Parser) BeginQuotes() string {
	return string(p.beginQuotes)
}

// SetBeginQuotes sets the quote-open characters. The n-th character pairs
// with the n-th character of EndQuotes.
func (p *Parser) SetBeginQuotes(quotes string) {
	p.beginQuotes = []rune(quotes)
}

// EndQuotes returns the quote-close characters.
func (p *Parser) EndQuotes() string {
	return string(p.endQuotes)
}

// SetEndQuotes sets the quote-close characters.
func (p *Parser) SetEndQuotes(quotes string) {
	p.endQuotes = []rune(quotes)
}

// MatrixRowTerminator returns the character separating matrix rows.
func (p *Parser) MatrixRowTerminator() rune {
	return p.rowTerminator
}

// SetMatrixRowTerminator sets the character separating matrix rows.
func (p *Parser) SetMatrixRowTerminator(ch rune) {
	p.rowTerminator = ch
}

// AutoIncrement is true if the conversion functions call NextParam
// before reading the value.
func (p *Parser) AutoIncrement() bool {
	return p.autoIncrement
}

// SetAutoIncrement switches auto-increment on or off.
func (p *Parser) SetAutoIncrement(on bool) {
	p.autoIncrement = on
}

// ConvertError is true if the last numeric conversion failed.
func (p *Parser) ConvertError() bool {
	return p.convertError
}
