package parser

// Cursor owns the input code points and a read position that only moves
// forward. The position never goes past len(input).
type Cursor struct {
	input              []rune
	pos                int
	extendedWhitespace bool
}

// NewCursor creates a cursor positioned at the start of text
func NewCursor(text string, extendedWhitespace bool) *Cursor {
	return &Cursor{
		input:              []rune(text),
		extendedWhitespace: extendedWhitespace,
	}
}

// Peek returns the rune at the current position without consuming it
func (c *Cursor) Peek() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

// Pop returns the rune at the current position and advances past it.
// At end of input it returns false and leaves the position unchanged.
func (c *Cursor) Pop() (rune, bool) {
	r, ok := c.Peek()
	if ok {
		c.pos++
	}
	return r, ok
}

// IsDone reports whether every rune has been consumed
func (c *Cursor) IsDone() bool {
	return c.pos >= len(c.input)
}

// Pos returns the current position in code points
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the input length in code points
func (c *Cursor) Len() int {
	return len(c.input)
}

// SkipWhitespace consumes spaces and newlines, plus tabs and carriage
// returns when extended whitespace is enabled
func (c *Cursor) SkipWhitespace() {
	for {
		r, ok := c.Peek()
		if !ok || !c.isWhitespace(r) {
			return
		}
		c.pos++
	}
}

func (c *Cursor) isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n':
		return true
	case '\t', '\r':
		return c.extendedWhitespace
	default:
		return false
	}
}
