package sources

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/gosimple/unidecode"
	"github.com/npillmayer/asciify/codec"
	"github.com/npillmayer/asciify/compact"
	"github.com/npillmayer/asciify/sources/emojidata"
	"github.com/npillmayer/asciify/sources/emojione"
	"github.com/npillmayer/asciify/sources/gemoji"
)

//go:embed data/*.json
var data embed.FS

// Names of the embedded name files.
const (
	GemojiFile    = "data/gemoji.json"
	EmojiOneFile  = "data/emojione.json"
	EmojiDataFile = "data/emoji.json"
)

// BMPSize is the number of entries of the base table.
const BMPSize = 0x10000

// NameReader yields emoji names one-by-one.
// It should return io.EOF when the stream is exhausted.
type NameReader interface {
	Next() (r rune, name string, err error)
}

// isUnknown is true for entries the unidecode data marks as unknown.
func isUnknown(s string) bool {
	return s == "[?]" || s == "[?] " || s == compact.Unknown
}

// isVariationSelector is true for U+FE00 to U+FE0F.
func isVariationSelector(r rune) bool {
	return r >= 0xFE00 && r <= 0xFE0F
}

// Unidecode returns the base table for the Basic Multilingual Plane.
// Surrogate codepoints and entries marked "[?]" become compact.Unknown.
// Variation selectors transliterate to nothing, as they only pick the
// presentation of the preceding character.
func Unidecode() compact.RawTable {
	raw := make(compact.RawTable, BMPSize)
	for cp := range raw {
		r := rune(cp)
		if utf16.IsSurrogate(r) {
			raw[cp] = compact.Unknown
			continue
		}
		if isVariationSelector(r) {
			raw[cp] = ""
			continue
		}
		s := unidecode.Unidecode(string(r))
		if isUnknown(s) {
			s = compact.Unknown
		}
		raw[cp] = s
	}
	return raw
}

// EmojiName normalizes an emoji short name to its table form:
// underscores become spaces and a single space is appended, so that
// consecutive emoji read as separate words.
//
//	"unicorn_face" => "unicorn face "
func EmojiName(name string) string {
	return strings.ReplaceAll(name, "_", " ") + " "
}

// Merge adds names from readers to raw, returning the (possibly extended)
// table. Readers are consumed in order. A name replaces the current entry of
// its codepoint if that entry is empty, unknown, or longer than the name.
// ASCII codepoints are never replaced. If a codepoint lies beyond the end of
// raw, the table grows and the gap is filled with compact.Unknown.
func Merge(raw compact.RawTable, readers ...NameReader) (compact.RawTable, error) {
	merged := 0
	for _, reader := range readers {
		for {
			r, name, err := reader.Next()
			if err == io.EOF {
				break
			} else if err != nil {
				return raw, err
			}
			if r < utf8.RuneSelf || r > utf8.MaxRune || name == "" {
				continue
			}
			name = EmojiName(name)
			if !codec.IsASCII(name) {
				tracer().Errorf("skipping non-ASCII name %q for %U", name, r)
				continue
			}
			for len(raw) <= int(r) {
				raw = append(raw, compact.Unknown)
			}
			if cur := raw[r]; cur == "" || isUnknown(cur) || len(name) < len(cur) {
				raw[r] = name
				merged++
			}
		}
	}
	tracer().Debugf("merged %d names, table covers %d codepoints", merged, len(raw))
	return raw, nil
}

// Data returns the embedded name files.
func Data() fs.FS {
	return data
}

// Default returns the base table merged with the embedded gemoji, emojione
// and emoji-data names, in this order.
func Default() (compact.RawTable, error) {
	g, err := data.Open(GemojiFile)
	if err != nil {
		return nil, fmt.Errorf("sources: %w", err)
	}
	defer g.Close()
	o, err := data.Open(EmojiOneFile)
	if err != nil {
		return nil, fmt.Errorf("sources: %w", err)
	}
	defer o.Close()
	e, err := data.Open(EmojiDataFile)
	if err != nil {
		return nil, fmt.Errorf("sources: %w", err)
	}
	defer e.Close()
	return Merge(Unidecode(), gemoji.NewReader(g), emojione.NewReader(o), emojidata.NewReader(e))
}
