package asciify

import (
	"iter"
	"unicode/utf8"
)

// Chars iterates over the transliteration of a string, one chunk per
// input character.
//
// A chunk longer than one byte which ends in a space loses this space if the
// following chunk is known and starts with a space, or if it is the last
// chunk. Characters which transliterate to nothing, e.g. combining marks,
// are skipped for this decision. Chars decodes one character ahead and keeps
// it as pending chunk. Single-byte chunks, i.e. spaces in the input, are
// never trimmed.
//
// A Chars is not safe for concurrent use, but any number of them may share
// a table.
type Chars struct {
	table       *Table
	src         string
	pos         int    // byte position of the next undecoded character
	pending     string // chunk decoded ahead
	pendingOK   bool   // pending chunk is a known transliteration
	havePending bool
}

// NewChars creates an iterator over the transliteration of s with table t.
// If t is nil, the default table is used.
func NewChars(t *Table, s string) *Chars {
	if t == nil {
		t = Default()
	}
	return &Chars{table: t, src: s}
}

// Chars creates an iterator over the transliteration of s.
func (t *Table) Chars(s string) *Chars {
	return &Chars{table: t, src: s}
}

// Next returns the next chunk. known is false for characters without a
// transliteration; chunk is empty then. ok is false when the input is
// exhausted.
func (c *Chars) Next() (chunk string, known bool, ok bool) {
	if c.havePending {
		chunk, known = c.pending, c.pendingOK
		c.havePending = false
	} else if c.pos < len(c.src) {
		chunk, known = c.decode()
	} else {
		return "", false, false
	}
	if !known || len(chunk) < 2 || chunk[len(chunk)-1] != ' ' {
		return chunk, known, true
	}
	if c.pos < len(c.src) {
		c.pending, c.pendingOK = c.decode()
		c.havePending = true
	}
	next, nextOK, more := c.pending, c.pendingOK, c.havePending
	if more && nextOK && next == "" {
		next, nextOK, more = c.visibleAfter(c.pos)
	}
	if !more || (nextOK && len(next) > 0 && next[0] == ' ') {
		chunk = chunk[:len(chunk)-1]
	}
	return chunk, true, true
}

// visibleAfter returns the first chunk at or after byte position pos which
// is unknown or not empty, without consuming input. more is false if there
// is no such chunk.
func (c *Chars) visibleAfter(pos int) (chunk string, known bool, more bool) {
	for pos < len(c.src) {
		r, size := utf8.DecodeRuneInString(c.src[pos:])
		pos += size
		if chunk, known = c.table.Decode(r); !known || chunk != "" {
			return chunk, known, true
		}
	}
	return "", false, false
}

func (c *Chars) decode() (string, bool) {
	r, size := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += size
	return c.table.Decode(r)
}

// Reset rewinds the iterator to the start of its input.
func (c *Chars) Reset() {
	c.pos = 0
	c.pending, c.pendingOK, c.havePending = "", false, false
}

// All returns a sequence of (chunk, known) pairs. Every call of the sequence
// starts at the beginning of the input, independent of the state of c.
func (c *Chars) All() iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		it := Chars{table: c.table, src: c.src}
		for {
			chunk, known, ok := it.Next()
			if !ok || !yield(chunk, known) {
				return
			}
		}
	}
}
