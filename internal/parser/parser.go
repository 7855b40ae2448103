package parser

import (
	"github.com/mcncl/rdjson/internal/errors"
	"github.com/mcncl/rdjson/internal/models"
)

// DefaultMaxDepth bounds object and array nesting. The root object is depth 1.
const DefaultMaxDepth = 512

// Options tunes a parse
type Options struct {
	// MaxDepth is the deepest nesting allowed; zero or less means DefaultMaxDepth
	MaxDepth int
	// ExtendedWhitespace also skips '\t' and '\r' between tokens
	ExtendedWhitespace bool
}

// DefaultOptions returns the options ParseDocument uses
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

type parser struct {
	cur      *Cursor
	maxDepth int
	depth    int
}

// ParseDocument parses text whose root must be an object
func ParseDocument(text string) (models.ObjectValue, error) {
	return ParseDocumentWithOptions(text, DefaultOptions())
}

// ParseDocumentWithOptions is ParseDocument with explicit options
func ParseDocumentWithOptions(text string, opts Options) (models.ObjectValue, error) {
	if text == "" {
		return models.ObjectValue{}, errors.NewParseError(errors.KindEmptyDocument, 0, "document is empty")
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{
		cur:      NewCursor(text, opts.ExtendedWhitespace),
		maxDepth: maxDepth,
	}

	root, err := p.parseObject()
	if err != nil {
		return models.ObjectValue{}, err
	}

	p.cur.SkipWhitespace()
	if r, ok := p.cur.Peek(); ok {
		return models.ObjectValue{}, errors.NewParseErrorAt(errors.KindTrailingContent, p.cur.Pos(), r, "unexpected content after the root object")
	}
	return root, nil
}

func (p *parser) enter(pos int) error {
	p.depth++
	if p.depth > p.maxDepth {
		return errors.NewParseError(errors.KindDepthLimitExceeded, pos, "nesting exceeds the maximum depth of %d", p.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}
