package lexer

// Cursor is a rewindable read position over a byte tape.
// Positions are clamped to [0, len-1]; the cursor never moves past the last byte.
type Cursor struct {
	buf []byte
	pos int

	saved []int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{
		buf: buf,
		pos: 0,
	}
}

// Current panics when the tape is empty. Callers must not read an empty cursor.
func (c *Cursor) Current() byte {
	return c.buf[c.pos]
}

// PeekNext returns the byte after the current one, or false at the end of the tape.
func (c *Cursor) PeekNext() (byte, bool) {
	if c.pos+1 >= len(c.buf) {
		return 0, false
	}

	return c.buf[c.pos+1], true
}

// Advance moves one byte forward and returns the new current byte.
// It reports false and stays put when already on the last byte.
func (c *Cursor) Advance() (byte, bool) {
	if c.pos+1 >= len(c.buf) {
		return 0, false
	}

	c.pos++
	return c.buf[c.pos], true
}

func (c *Cursor) Skip(n int) {
	c.pos += n
	if c.pos >= len(c.buf) {
		c.pos = max(len(c.buf)-1, 0)
	}
}

func (c *Cursor) Rewind(n int) {
	c.pos -= n
	if c.pos < 0 {
		c.pos = 0
	}
}

func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.buf)-1
}

func (c *Cursor) SkipWhitespace() {
	for isWhitespace(c.Current()) {
		if _, ok := c.Advance(); !ok {
			return
		}
	}
}

func (c *Cursor) Pos() int {
	return c.pos
}

// Save pushes the current position; Restore pops it back.
// Saves nest, so speculative scans may run inside one another.
func (c *Cursor) Save() {
	c.saved = append(c.saved, c.pos)
}

func (c *Cursor) Restore() {
	if len(c.saved) == 0 {
		return
	}

	c.pos = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

func isWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}
