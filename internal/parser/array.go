package parser

import (
	"github.com/mcncl/rdjson/internal/errors"
	"github.com/mcncl/rdjson/internal/models"
)

// parseArray reads '[' ... ']'. expectingSeparator is set after each value
// and expectingOneMoreElement after each ','.
func (p *parser) parseArray() (models.ArrayValue, error) {
	start := p.cur.Pos()
	r, ok := p.cur.Pop()
	if !ok {
		return models.ArrayValue{}, errors.NewParseError(errors.KindExpectedArrayStart, start, "expected array to start with '[' but input ended")
	}
	if r != '[' {
		return models.ArrayValue{}, errors.NewParseErrorAt(errors.KindExpectedArrayStart, start, r, "expected array to start with '['")
	}
	if err := p.enter(start); err != nil {
		return models.ArrayValue{}, err
	}
	defer p.leave()

	var (
		items                   []models.Value
		expectingOneMoreElement bool
		expectingSeparator      bool
	)

loop:
	for {
		p.cur.SkipWhitespace()
		r, ok := p.cur.Peek()
		if !ok {
			break
		}

		switch r {
		case ']':
			break loop

		case ',':
			if !expectingSeparator {
				return models.ArrayValue{}, errors.NewParseErrorAt(errors.KindCommaBeforeElement, p.cur.Pos(), r, "expected an array element before ','")
			}
			p.cur.Pop()
			expectingOneMoreElement = true
			expectingSeparator = false

		default:
			if expectingSeparator {
				return models.ArrayValue{}, errors.NewParseErrorAt(errors.KindMissingCommaBetweenElements, p.cur.Pos(), r, "expected ',' between array elements")
			}
			item, err := p.parseValue()
			if err != nil {
				return models.ArrayValue{}, err
			}
			items = append(items, item)
			expectingSeparator = true
			expectingOneMoreElement = false
		}
	}

	if expectingOneMoreElement {
		return models.ArrayValue{}, errors.NewParseError(errors.KindTrailingCommaNoFollowingElement, p.cur.Pos(), "expected one more array element after ','")
	}
	if _, ok := p.cur.Pop(); !ok {
		return models.ArrayValue{}, errors.NewParseError(errors.KindUnexpectedEndOfInput, p.cur.Pos(), "array starting at position %d is missing ']'", start)
	}

	return models.NewArray(items...), nil
}
