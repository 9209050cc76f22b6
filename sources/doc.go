/*
Package sources assembles the raw transliteration table the compactor works on.

The base table covers the Basic Multilingual Plane and is taken from the
unidecode transliteration data. Emoji names from gemoji, emojione and
emoji-data files are merged on top of it, extending the table beyond the BMP
where needed. The shortest known name of an emoji wins.

The embedded name files are excerpts of these databases. Complete files may
be passed to cmd/asciify-compact.

Readers for concrete file formats live in sub-packages emojidata, emojione
and gemoji.
They deliver names through the NameReader interface.
*/
package sources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'asciify'
func tracer() tracing.Trace {
	return tracing.Select("asciify")
}
