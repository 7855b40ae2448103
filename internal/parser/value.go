package parser

import (
	"github.com/mcncl/rdjson/internal/errors"
	"github.com/mcncl/rdjson/internal/models"
)

// parseValue looks at the next rune and hands off to the matching parser
// without consuming anything itself.
func (p *parser) parseValue() (models.Value, error) {
	r, ok := p.cur.Peek()
	if !ok {
		return nil, errors.NewParseError(errors.KindUnexpectedEndOfInput, p.cur.Pos(), "expected a value but input ended")
	}

	switch {
	case r == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return models.StringValue(s), nil
	case r == '{':
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		return obj, nil
	case r == '[':
		arr, err := p.parseArray()
		if err != nil {
			return nil, err
		}
		return arr, nil
	case r == '-' || isDigit(r):
		num, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		return num, nil
	case r == 't':
		if err := p.matchWord("true"); err != nil {
			return nil, err
		}
		return models.BoolValue(true), nil
	case r == 'f':
		if err := p.matchWord("false"); err != nil {
			return nil, err
		}
		return models.BoolValue(false), nil
	case r == 'n':
		if err := p.matchWord("null"); err != nil {
			return nil, err
		}
		return models.NullValue{}, nil
	default:
		return nil, errors.NewParseErrorAt(errors.KindUnexpectedToken, p.cur.Pos(), r, "unexpected token")
	}
}
