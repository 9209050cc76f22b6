/*
Package compact builds the binary transliteration table from a raw,
per-codepoint table of replacement strings.

The compactor runs offline. It deduplicates replacement strings into a shared
mapping pool, preferring to store frequently used and long strings first, and
resolves shorter strings to occurrences inside strings already stored. Every
codepoint then receives a fixed-size record (see package codec).

Building is a pure transformation: writing the artifacts is left to the
caller.
*/
package compact

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'asciify'
func tracer() tracing.Trace {
	return tracing.Select("asciify")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
