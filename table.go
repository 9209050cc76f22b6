package asciify

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/npillmayer/asciify/codec"
	"github.com/npillmayer/asciify/manifest"
)

// Table is a loaded transliteration table.
//
// Both artifacts are held as strings; decoded replacements are sub-strings
// of them and share their memory.
type Table struct {
	pointers string // codec.RecordSize bytes per codepoint
	mapping  string // pool of replacements longer than codec.MaxInline
	identity bool   // ASCII codepoints map to themselves
}

// NewTable creates a table from a pointer table and a mapping pool, as
// produced by package compact. Both buffers are copied.
func NewTable(pointers, mapping []byte) (*Table, error) {
	if err := codec.Check(pointers, mapping); err != nil {
		return nil, err
	}
	t := &Table{
		pointers: string(pointers),
		mapping:  string(mapping),
	}
	t.identity = t.mapsASCIIToItself()
	if !t.identity {
		tracer().Infof("table does not map ASCII to itself")
	}
	return t, nil
}

// LoadTable reads the table artifacts from fsys. If a manifest is present,
// the artifacts are checked against it.
func LoadTable(fsys fs.FS) (*Table, error) {
	pointers, err := fs.ReadFile(fsys, codec.PointersFile)
	if err != nil {
		return nil, fmt.Errorf("asciify: loading pointer table: %w", err)
	}
	mapping, err := fs.ReadFile(fsys, codec.MappingFile)
	if err != nil {
		return nil, fmt.Errorf("asciify: loading mapping pool: %w", err)
	}
	data, err := fs.ReadFile(fsys, manifest.File)
	switch {
	case err == nil:
		m, err := manifest.Unmarshal(data)
		if err != nil {
			return nil, err
		}
		if err := m.Check(pointers, mapping); err != nil {
			return nil, err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("asciify: loading manifest: %w", err)
	}
	return NewTable(pointers, mapping)
}

// Len returns the number of codepoints covered by the table.
func (t *Table) Len() int {
	return len(t.pointers) / codec.RecordSize
}

// Decode returns the replacement for codepoint r. It returns false if r has
// no known transliteration or lies outside of the table. An empty result with
// true means that r is deliberately dropped.
func (t *Table) Decode(r rune) (string, bool) {
	return codec.Lookup(t.pointers, t.mapping, r)
}

func (t *Table) mapsASCIIToItself() bool {
	for c := rune(0); c < 0x80; c++ {
		s, ok := t.Decode(c)
		if !ok || len(s) != 1 || rune(s[0]) != c {
			return false
		}
	}
	return true
}
