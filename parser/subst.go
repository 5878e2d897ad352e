package parser

import (
	"strings"

	"github.com/npillmayer/dssparse/variables"
)

// checkForVar replaces a leading variable reference in the token buffer by
// the variable's value. The variable name ends before the first '^' or,
// if there is none, before the first '.'; the rest of the token is kept.
//
//     @bus.1.2  with @bus=Source  ⟹  Source.1.2
//
// Values wrapped in braces are literals: the braces are stripped and the
// token is flagged as quoted. The substituted text is never expanded again.
//
// Returns true if the token buffer is unchanged.
func (p *Parser) checkForVar() bool {
	original := p.tokenBuffer
	if len(p.tokenBuffer) > 1 && p.tokenBuffer[0] == variables.Sigil && p.vars != nil {
		cut := strings.IndexByte(p.tokenBuffer, '^')
		if cut < 0 {
			cut = strings.IndexByte(p.tokenBuffer, '.')
		}
		name, suffix := p.tokenBuffer, ""
		if cut >= 0 {
			name, suffix = p.tokenBuffer[:cut], p.tokenBuffer[cut:]
		}
		if p.vars.Lookup(name) {
			value := p.vars.Value()
			if len(value) >= 2 && value[0] == '{' && value[len(value)-1] == '}' {
				value = value[1 : len(value)-1]
				p.isQuotedString = true
			}
			p.tokenBuffer = value + suffix
			tracer().P("var", name).Debugf("substituted %q", p.tokenBuffer)
		}
	}
	return p.tokenBuffer == original
}
