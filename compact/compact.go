package compact

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/npillmayer/asciify/codec"
)

// Unknown is the raw table entry for codepoints without a known
// transliteration.
const Unknown = "\x00\x00\x00"

// RawTable holds one replacement string per codepoint, index == codepoint.
type RawTable []string

// ErrMismatch is reported by Verify if a table does not reproduce its input.
var ErrMismatch = errors.New("compact: table does not reproduce raw entry")

// Stats reports what a build produced.
type Stats struct {
	Codepoints int // records in the pointer table
	Empty      int // codepoints mapped to the empty string
	Inline     int // codepoints stored inline
	Pooled     int // codepoints referencing the mapping pool
	Unknown    int // codepoints without transliteration
	Candidates int // distinct strings longer than codec.MaxInline
	Canonical  int // distinct strings actually placed in the pool
	Reused     int // canonical strings found inside existing pool content
	PoolSize   int // mapping pool length in bytes
}

func (s Stats) String() string {
	return fmt.Sprintf("codepoints=%d empty=%d inline=%d pooled=%d unknown=%d candidates=%d canonical=%d reused=%d pool=%d",
		s.Codepoints, s.Empty, s.Inline, s.Pooled, s.Unknown, s.Candidates, s.Canonical, s.Reused, s.PoolSize)
}

// Result holds the two build artifacts.
type Result struct {
	Pointers []byte // codec.RecordSize bytes per codepoint
	Mapping  []byte // shared pool of replacement strings
	Stats    Stats
}

// Option configures a build.
type Option func(*builder)

// PrefixesOnly restricts redundancy resolution to prefixes: a string is only
// folded onto a longer one if it starts the longer one. The default resolves
// any contiguous substring and records its position within the longer string.
func PrefixesOnly() Option {
	return func(b *builder) {
		b.prefixesOnly = true
	}
}

// candidate is a distinct replacement string which has to go to the pool.
type candidate struct {
	text  string
	count int // number of codepoints using it
	first int // ordinal of first use among all pooled entries
}

// resolution folds a string onto a carrier string containing it at
// position at.
type resolution struct {
	carrier string
	at      int
}

type builder struct {
	raw          RawTable
	prefixesOnly bool
	candidates   []*candidate
	resolved     *trie.Trie
	offsets      map[string]int // carrier → pool offset
	pool         strings.Builder
	stats        Stats
}

// Build compacts raw into a pointer table and a mapping pool.
//
// Build fails if an entry contains non-ASCII bytes, if an entry is longer than
// codec.MaxLength, or if the pool would grow beyond the 16-bit offset range.
func Build(raw RawTable, opts ...Option) (*Result, error) {
	b := &builder{
		raw:     raw,
		offsets: make(map[string]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	b.collect()
	b.order()
	b.resolve()
	if err := b.place(); err != nil {
		return nil, err
	}
	pointers, err := b.emit()
	if err != nil {
		return nil, err
	}
	res := &Result{
		Pointers: pointers,
		Mapping:  []byte(b.pool.String()),
		Stats:    b.stats,
	}
	tracer().Infof("compacted table: %s", res.Stats)
	return res, nil
}

func isCandidate(s string) bool {
	return len(s) > codec.MaxInline && s != Unknown
}

func (b *builder) validate() error {
	if len(b.raw) > utf8.MaxRune+1 {
		return fmt.Errorf("compact: raw table has %d entries, exceeds codepoint range", len(b.raw))
	}
	for cp, s := range b.raw {
		if s == Unknown {
			continue
		}
		if len(s) > codec.MaxLength {
			return fmt.Errorf("compact: codepoint %U: %w: %d bytes", rune(cp), codec.ErrTooLong, len(s))
		}
		if !codec.IsASCII(s) {
			return fmt.Errorf("compact: codepoint %U: %w: %q", rune(cp), codec.ErrNonASCII, s)
		}
	}
	return nil
}

// collect counts how many codepoints use each pooled string.
func (b *builder) collect() {
	seen := make(map[string]*candidate)
	n := 0
	for _, s := range b.raw {
		if !isCandidate(s) {
			continue
		}
		c, ok := seen[s]
		if !ok {
			c = &candidate{text: s, first: n}
			seen[s] = c
			b.candidates = append(b.candidates, c)
		}
		c.count++
		n++
	}
	b.stats.Candidates = len(b.candidates)
}

// order sorts candidates by priority: most used first, then longest first,
// then roughly by table position and finally lexically.
func (b *builder) order() {
	sort.Slice(b.candidates, func(i, j int) bool {
		ci, cj := b.candidates[i], b.candidates[j]
		if ci.count != cj.count {
			return ci.count > cj.count
		}
		if len(ci.text) != len(cj.text) {
			return len(ci.text) > len(cj.text)
		}
		if ci.first/4 != cj.first/4 {
			return ci.first/4 < cj.first/4
		}
		return ci.text < cj.text
	})
}

// resolve registers every substring longer than codec.MaxInline of each
// candidate, unless an earlier candidate already claimed it.
func (b *builder) resolve() {
	b.resolved = trie.New()
	for _, c := range b.candidates {
		if _, ok := b.resolved.Find(c.text); ok {
			continue
		}
		s := c.text
		for end := len(s); end > codec.MaxInline; end-- {
			for start := 0; end-start > codec.MaxInline; start++ {
				if start > 0 && b.prefixesOnly {
					break
				}
				sub := s[start:end]
				if _, ok := b.resolved.Find(sub); !ok {
					b.resolved.Add(sub, resolution{carrier: s, at: start})
				}
			}
		}
	}
}

func (b *builder) resolution(s string) resolution {
	node, ok := b.resolved.Find(s)
	assert(ok, "pooled string has not been resolved")
	res, ok := node.Meta().(resolution)
	assert(ok, "resolution index holds foreign value")
	return res
}

// place appends each carrier to the pool, unless it already occurs there,
// possibly spanning two neighbours.
func (b *builder) place() error {
	for _, c := range b.candidates {
		carrier := b.resolution(c.text).carrier
		if _, ok := b.offsets[carrier]; ok {
			continue
		}
		if i := strings.Index(b.pool.String(), carrier); i >= 0 {
			b.offsets[carrier] = i
			b.stats.Reused++
			continue
		}
		b.offsets[carrier] = b.pool.Len()
		b.pool.WriteString(carrier)
		if b.pool.Len() >= codec.MaxPoolSize {
			return fmt.Errorf("compact: %w: pool reached %d bytes with %d of %d candidates placed",
				codec.ErrPoolOverflow, b.pool.Len(), len(b.offsets), len(b.candidates))
		}
	}
	b.stats.Canonical = len(b.offsets)
	b.stats.PoolSize = b.pool.Len()
	return nil
}

func (b *builder) emit() ([]byte, error) {
	pointers := make([]byte, len(b.raw)*codec.RecordSize)
	b.stats.Codepoints = len(b.raw)
	for cp, s := range b.raw {
		var r codec.Record
		var err error
		switch {
		case s == Unknown:
			r = codec.Unknown(len(Unknown))
			b.stats.Unknown++
		case len(s) == 0:
			b.stats.Empty++
			continue
		case len(s) <= codec.MaxInline:
			r, err = codec.Inline(s)
			b.stats.Inline++
		default:
			res := b.resolution(s)
			off, ok := b.offsets[res.carrier]
			assert(ok, "carrier has not been placed")
			r, err = codec.Pooled(off+res.at, len(s))
			b.stats.Pooled++
		}
		if err != nil {
			return nil, fmt.Errorf("compact: codepoint %U: %w", rune(cp), err)
		}
		r.Put(pointers, cp)
	}
	return pointers, nil
}

// Verify decodes every codepoint of res and compares it to raw.
func Verify(raw RawTable, res *Result) error {
	if len(res.Pointers) != len(raw)*codec.RecordSize {
		return fmt.Errorf("%w: %d records for %d codepoints",
			ErrMismatch, len(res.Pointers)/codec.RecordSize, len(raw))
	}
	if err := codec.Check(res.Pointers, res.Mapping); err != nil {
		return err
	}
	pointers, mapping := string(res.Pointers), string(res.Mapping)
	for cp, want := range raw {
		got, known := codec.Lookup(pointers, mapping, rune(cp))
		if want == Unknown {
			if known {
				return fmt.Errorf("%w: %U should be unknown, decodes to %q", ErrMismatch, rune(cp), got)
			}
			continue
		}
		if !known || got != want {
			return fmt.Errorf("%w: %U decodes to %q, want %q", ErrMismatch, rune(cp), got, want)
		}
	}
	return nil
}
