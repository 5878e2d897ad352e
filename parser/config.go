package parser

import (
	"github.com/knadh/koanf"
)

// Configuration keys for Configure.
const (
	KeyDelimiters    = "parser.delimiters"
	KeyWhitespace    = "parser.whitespace"
	KeyBeginQuotes   = "parser.beginquotes"
	KeyEndQuotes     = "parser.endquotes"
	KeyRowTerminator = "parser.rowterminator"
	KeyAutoIncrement = "parser.autoincrement"
)

// Configure applies delimiter settings from a configuration. Keys not
// present leave the current setting untouched. k may be nil.
func (p *Parser) Configure(k *koanf.Koanf) {
	if k == nil {
		return
	}
	if k.Exists(KeyDelimiters) {
		p.SetDelimiters(k.String(KeyDelimiters))
	}
	if k.Exists(KeyWhitespace) {
		p.SetWhitespace(k.String(KeyWhitespace))
	}
	if k.Exists(KeyBeginQuotes) {
		p.SetBeginQuotes(k.String(KeyBeginQuotes))
	}
	if k.Exists(KeyEndQuotes) {
		p.SetEndQuotes(k.String(KeyEndQuotes))
	}
	if k.Exists(KeyRowTerminator) {
		if t := []rune(k.String(KeyRowTerminator)); len(t) > 0 {
			p.SetMatrixRowTerminator(t[0])
		}
	}
	if k.Exists(KeyAutoIncrement) {
		p.SetAutoIncrement(k.Bool(KeyAutoIncrement))
	}
	tracer().Debugf("parser configured: delimiters=%q, quotes=%q/%q",
		p.delimChars, string(p.beginQuotes), string(p.endQuotes))
}
