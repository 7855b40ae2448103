package parser

import "github.com/mcncl/rdjson/internal/errors"

// matchWord consumes word one rune at a time. There is no backtracking.
func (p *parser) matchWord(word string) error {
	for _, expected := range word {
		pos := p.cur.Pos()
		r, ok := p.cur.Pop()
		if !ok {
			return errors.NewParseError(errors.KindMissingTerminator, pos, "input ended while reading %q", word)
		}
		if r != expected {
			return errors.NewParseErrorAt(errors.KindUnexpectedWordToken, pos, r, "expected %q for word %q", expected, word)
		}
	}
	return nil
}
