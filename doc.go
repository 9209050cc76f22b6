/*
Package asciify transliterates Unicode text into printable ASCII.

Every codepoint is replaced by a precomputed ASCII string, e.g.

	"Æneid"      => "AEneid"
	"北亰"        => "Bei Jing"
	"🦄☣"        => "unicorn face biohazard"

Replacements come from a compact binary table: a pointer table holding one
3-byte record per codepoint and a shared pool of replacement strings (see
package codec). The table is built offline by package compact and either
embedded from package tables or built from package sources on first use.

Decoding a single codepoint is a direct array lookup without allocation.
Many replacements end with a separating space. When chunks are joined,
a space which would be doubled at a chunk boundary or left dangling at the
end of the input is dropped. Spaces present in the input are never touched.

Transliteration is not translation and gives no guarantee of linguistic
correctness: Han characters are mapped to Mandarin readings, and characters
without a known replacement yield a placeholder (default "[?]").

A Table is immutable after creation and safe for concurrent use.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package asciify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'asciify'
func tracer() tracing.Trace {
	return tracing.Select("asciify")
}
