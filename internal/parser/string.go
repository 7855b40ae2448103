package parser

import (
	"strings"

	"github.com/mcncl/rdjson/internal/errors"
)

// parseString reads a quoted literal. Escapes are not interpreted.
func (p *parser) parseString() (string, error) {
	start := p.cur.Pos()
	r, ok := p.cur.Pop()
	if !ok {
		return "", errors.NewParseError(errors.KindExpectedStringStart, start, "expected string to start with '\"' but input ended")
	}
	if r != '"' {
		return "", errors.NewParseErrorAt(errors.KindExpectedStringStart, start, r, "expected string to start with '\"'")
	}

	var sb strings.Builder
	for {
		r, ok := p.cur.Pop()
		if !ok {
			return "", errors.NewParseError(errors.KindUnterminatedString, start, "unterminated string")
		}
		if r == '"' {
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}
