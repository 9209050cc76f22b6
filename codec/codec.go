/*
Package codec defines the binary layout shared by the table compactor and the
runtime decoder.

A transliteration table consists of two artifacts:

  - a pointer table, one fixed-size record per codepoint, index == codepoint
  - a mapping pool, one contiguous buffer of ASCII bytes

Each record is 3 bytes wide:

	+-----------+-----------+--------+
	| payload 0 | payload 1 | length |
	+-----------+-----------+--------+

The meaning of the payload depends on the length field:

	length 0   empty replacement, payload unused
	length 1   payload[0] is the replacement character
	length 2   payload[0] and payload[1] are the replacement characters
	length >2  payload is a little-endian offset into the mapping pool;
	           the replacement is pool[offset : offset+length]

Codepoints without a known transliteration carry the reserved offset
UnknownOffset. The pool is required to stay shorter than UnknownOffset, so the
marker can never address real pool content.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package codec

import (
	"errors"
	"fmt"
)

const (
	// RecordSize is the width of a pointer table record in bytes.
	RecordSize = 3
	// MaxInline is the longest replacement stored directly in a record.
	MaxInline = 2
	// MaxLength is the longest replacement a record can describe.
	MaxLength = 0xFF
	// UnknownOffset marks a codepoint without a known transliteration.
	UnknownOffset = 0xFFFF
	// MaxPoolSize is the exclusive upper bound for the mapping pool length.
	MaxPoolSize = UnknownOffset
)

// File names of the build artifacts.
const (
	PointersFile = "pointers.bin"
	MappingFile  = "mapping.txt"
)

// Errors reported while encoding records or checking artifacts.
var (
	ErrNonASCII     = errors.New("codec: replacement contains non-ASCII byte")
	ErrTooLong      = errors.New("codec: replacement too long")
	ErrPoolOverflow = errors.New("codec: mapping pool exceeds 16-bit offset range")
	ErrCorrupt      = errors.New("codec: corrupt pointer table")
)

// Record is the decoded form of one pointer table entry.
type Record struct {
	Payload [2]byte
	Length  uint8
}

// Inline creates a record storing s directly. s must be at most MaxInline
// bytes long and consist of ASCII characters only.
func Inline(s string) (Record, error) {
	var r Record
	if len(s) > MaxInline {
		return r, fmt.Errorf("%w: %q does not fit inline", ErrTooLong, s)
	}
	if i := nonASCII(s); i >= 0 {
		return r, fmt.Errorf("%w: %q at position %d", ErrNonASCII, s, i)
	}
	copy(r.Payload[:], s)
	r.Length = uint8(len(s))
	return r, nil
}

// Pooled creates a record referencing length bytes of the mapping pool,
// starting at offset.
func Pooled(offset, length int) (Record, error) {
	var r Record
	if length <= MaxInline || length > MaxLength {
		return r, fmt.Errorf("%w: pooled length %d out of range (%d..%d)",
			ErrTooLong, length, MaxInline+1, MaxLength)
	}
	if offset < 0 || offset+length > MaxPoolSize {
		return r, fmt.Errorf("%w: offset %d, length %d", ErrPoolOverflow, offset, length)
	}
	r.Payload[0] = byte(offset)
	r.Payload[1] = byte(offset >> 8)
	r.Length = uint8(length)
	return r, nil
}

// Unknown creates the record for a codepoint without transliteration.
// length should be greater than MaxInline, otherwise the record would read
// as an inline literal.
func Unknown(length int) Record {
	if length <= MaxInline {
		length = MaxInline + 1
	}
	return Record{
		Payload: [2]byte{UnknownOffset & 0xFF, UnknownOffset >> 8},
		Length:  uint8(length),
	}
}

// IsInline is true if the replacement is stored in the payload bytes.
func (r Record) IsInline() bool {
	return r.Length <= MaxInline
}

// Offset returns the mapping pool offset of a pooled record.
func (r Record) Offset() int {
	return int(r.Payload[0]) | int(r.Payload[1])<<8
}

// IsUnknown is true for records marking a missing transliteration.
func (r Record) IsUnknown() bool {
	return !r.IsInline() && r.Offset() == UnknownOffset
}

// Put writes the record for codepoint cp into a pointer table buffer.
// dst must be large enough to hold cp.
func (r Record) Put(dst []byte, cp int) {
	p := cp * RecordSize
	dst[p] = r.Payload[0]
	dst[p+1] = r.Payload[1]
	dst[p+2] = r.Length
}

func (r Record) String() string {
	switch {
	case r.IsInline():
		return fmt.Sprintf("inline(%q)", string(r.Payload[:r.Length]))
	case r.IsUnknown():
		return "unknown"
	}
	return fmt.Sprintf("pool[%d:+%d]", r.Offset(), r.Length)
}

// At reads the record for codepoint cp from a pointer table.
// It returns false if cp is outside of the table.
func At(pointers string, cp rune) (Record, bool) {
	var r Record
	if cp < 0 {
		return r, false
	}
	p := int(cp) * RecordSize
	if p+RecordSize > len(pointers) {
		return r, false
	}
	r.Payload[0], r.Payload[1], r.Length = pointers[p], pointers[p+1], pointers[p+2]
	return r, true
}

// Lookup decodes codepoint cp. Inline replacements are returned as sub-strings
// of pointers, pooled replacements as sub-strings of mapping; nothing is copied.
// The second result is false for unknown or out-of-range codepoints.
func Lookup(pointers, mapping string, cp rune) (string, bool) {
	if cp < 0 {
		return "", false
	}
	p := int(cp) * RecordSize
	if p+RecordSize > len(pointers) {
		return "", false
	}
	n := int(pointers[p+2])
	if n <= MaxInline {
		return pointers[p : p+n], true
	}
	off := int(pointers[p]) | int(pointers[p+1])<<8
	if off == UnknownOffset || off+n > len(mapping) {
		return "", false
	}
	return mapping[off : off+n], true
}

// Check validates the shape of a pair of artifacts: the pointer table must
// consist of whole records and the pool must stay below MaxPoolSize.
func Check(pointers, mapping []byte) error {
	if len(pointers)%RecordSize != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of %d",
			ErrCorrupt, len(pointers), RecordSize)
	}
	if len(mapping) >= MaxPoolSize {
		return fmt.Errorf("%w: pool has %d bytes", ErrPoolOverflow, len(mapping))
	}
	return nil
}

// IsASCII reports whether every byte of s is below 0x80.
func IsASCII(s string) bool {
	return nonASCII(s) < 0
}

func nonASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}
	return -1
}
