package asciify

import (
	"github.com/npillmayer/asciify/codec"
)

// DefaultPlaceholder replaces characters without a known transliteration.
const DefaultPlaceholder = "[?]"

// Transliterate returns the ASCII transliteration of s, using
// DefaultPlaceholder for unknown characters.
//
//	"Æneid" => "AEneid"
func (t *Table) Transliterate(s string) string {
	return t.TransliterateWithPlaceholder(s, DefaultPlaceholder)
}

// TransliterateWithPlaceholder returns the ASCII transliteration of s,
// using placeholder for unknown characters. Pure ASCII input is returned
// unchanged.
func (t *Table) TransliterateWithPlaceholder(s, placeholder string) string {
	if t.identity && codec.IsASCII(s) {
		return s
	}
	return string(t.appendChunks(make([]byte, 0, len(s)+len(s)/2), s, placeholder))
}

// AppendTransliteration appends the transliteration of s to dst and returns
// the extended buffer. Unknown characters are replaced by DefaultPlaceholder.
func (t *Table) AppendTransliteration(dst []byte, s string) []byte {
	if t.identity && codec.IsASCII(s) {
		return append(dst, s...)
	}
	return t.appendChunks(dst, s, DefaultPlaceholder)
}

func (t *Table) appendChunks(dst []byte, s, placeholder string) []byte {
	c := Chars{table: t, src: s}
	for {
		chunk, known, ok := c.Next()
		if !ok {
			return dst
		}
		if !known {
			chunk = placeholder
		}
		dst = append(dst, chunk...)
	}
}

// DecodeChar returns the replacement for r from the default table.
// See (*Table).Decode.
func DecodeChar(r rune) (string, bool) {
	return Default().Decode(r)
}

// Transliterate returns the ASCII transliteration of s using the default
// table.
func Transliterate(s string) string {
	return Default().Transliterate(s)
}

// TransliterateWithPlaceholder is Transliterate with a custom placeholder
// for unknown characters.
func TransliterateWithPlaceholder(s, placeholder string) string {
	return Default().TransliterateWithPlaceholder(s, placeholder)
}

// AppendTransliteration appends the transliteration of s with the default
// table to dst.
func AppendTransliteration(dst []byte, s string) []byte {
	return Default().AppendTransliteration(dst, s)
}
