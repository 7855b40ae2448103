package parser

import (
	"strconv"
	"strings"

	"github.com/mcncl/rdjson/internal/errors"
	"github.com/mcncl/rdjson/internal/models"
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNumberRune(r rune) bool {
	return isDigit(r) || r == '.' || r == '-' || r == 'e' || r == 'E'
}

// parseNumber consumes the longest run of number runes and reads it as an
// int64, falling back to float64.
func (p *parser) parseNumber() (models.NumberValue, error) {
	start := p.cur.Pos()

	var lexeme strings.Builder
	for {
		r, ok := p.cur.Peek()
		if !ok || !isNumberRune(r) {
			break
		}
		lexeme.WriteRune(r)
		p.cur.Pop()
	}

	text := lexeme.String()
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return models.Integer(i), nil
	}
	// ParseFloat reports out-of-range values as errors, so no infinities get through
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return models.Float(f), nil
	}
	return models.NumberValue{}, errors.NewParseError(errors.KindInvalidNumber, start, "invalid number %q", text)
}
