package parser

import (
	"github.com/mcncl/rdjson/internal/errors"
	"github.com/mcncl/rdjson/internal/models"
)

type objectState int

const (
	stateKey objectState = iota
	stateValue
)

// parseObject reads '{' ... '}' with a two-state machine: in stateKey it
// waits for a quoted key and then ':', in stateValue for a value or ','.
func (p *parser) parseObject() (models.ObjectValue, error) {
	start := p.cur.Pos()
	r, ok := p.cur.Pop()
	if !ok {
		return models.ObjectValue{}, errors.NewParseError(errors.KindExpectedObjectStart, start, "expected object to start with '{' but input ended")
	}
	if r != '{' {
		return models.ObjectValue{}, errors.NewParseErrorAt(errors.KindExpectedObjectStart, start, r, "expected object to start with '{'")
	}
	if err := p.enter(start); err != nil {
		return models.ObjectValue{}, err
	}
	defer p.leave()

	var (
		state             = stateKey
		pendingKey        string
		hasKey            bool
		expectOneMorePair bool
		entries           = make(map[string]models.Value)
	)

loop:
	for {
		p.cur.SkipWhitespace()
		r, ok := p.cur.Peek()
		if !ok {
			break
		}

		switch {
		case state == stateKey && r == '}':
			break loop

		case state == stateKey && r == ':':
			if !hasKey {
				return models.ObjectValue{}, errors.NewParseErrorAt(errors.KindColonWithoutKey, p.cur.Pos(), r, "expected a quoted key before ':'")
			}
			p.cur.Pop()
			state = stateValue

		case state == stateKey && r == '"':
			if hasKey {
				return models.ObjectValue{}, errors.NewParseErrorAt(errors.KindDuplicateKeyBeforeColon, p.cur.Pos(), r, "expected ':' after key %q", pendingKey)
			}
			key, err := p.parseString()
			if err != nil {
				return models.ObjectValue{}, err
			}
			pendingKey, hasKey = key, true

		case state == stateValue && r == '}':
			if expectOneMorePair {
				return models.ObjectValue{}, errors.NewParseErrorAt(errors.KindTrailingCommaExpectedPair, p.cur.Pos(), r, "expected one more value after ',' but got '}'")
			}
			break loop

		case state == stateValue && r == ',':
			p.cur.Pop()
			expectOneMorePair = true
			state = stateKey

		case state == stateValue:
			pos := p.cur.Pos()
			value, err := p.parseValue()
			if err != nil {
				return models.ObjectValue{}, err
			}
			if !hasKey {
				return models.ObjectValue{}, errors.NewParseError(errors.KindMissingKey, pos, "value has no key; is a ',' missing?")
			}
			entries[pendingKey] = value
			pendingKey, hasKey = "", false
			expectOneMorePair = false

		default:
			return models.ObjectValue{}, errors.NewParseErrorAt(errors.KindUnexpectedToken, p.cur.Pos(), r, "unexpected token in object")
		}
	}

	if expectOneMorePair {
		return models.ObjectValue{}, errors.NewParseError(errors.KindTrailingCommaNoFollowingPair, p.cur.Pos(), "expected one more key-value pair after ','")
	}
	// The loop only stops early on '}', so a successful pop here is the closer.
	if _, ok := p.cur.Pop(); !ok {
		return models.ObjectValue{}, errors.NewParseError(errors.KindUnexpectedEndOfInput, p.cur.Pos(), "object starting at position %d is missing '}'", start)
	}
	if hasKey {
		return models.ObjectValue{}, errors.NewParseError(errors.KindMissingValue, p.cur.Pos()-1, "key %q has no value", pendingKey)
	}

	return models.NewObject(entries), nil
}
