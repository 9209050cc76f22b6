/*
Package manifest describes a generated transliteration table.

A manifest accompanies the pointer table and the mapping pool. It records the
format version, the table dimensions, checksums of both artifacts and the
statistics of the compaction run. It is stored CBOR-encoded in canonical form,
so that identical builds produce identical manifests.
*/
package manifest

import (
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/fxamacker/cbor/v2"
	"github.com/npillmayer/asciify/codec"
	"github.com/npillmayer/asciify/compact"
)

// File is the artifact name of the manifest.
const File = "manifest.cbor"

// Version is the current table format version.
const Version = 1

var (
	// ErrMismatch is returned if artifacts do not match their manifest.
	ErrMismatch = errors.New("manifest: artifacts do not match manifest")
	// ErrFormat is returned for undecodable or unsupported manifests.
	ErrFormat = errors.New("manifest: invalid manifest")
)

// Manifest is the build record of a table.
type Manifest struct {
	Version     int           `cbor:"1,keyasint"`
	Codepoints  int           `cbor:"2,keyasint"` // records in the pointer table
	PoolSize    int           `cbor:"3,keyasint"` // mapping pool length in bytes
	PointersCRC uint32        `cbor:"4,keyasint"` // CRC-32 (IEEE) of the pointer table
	MappingCRC  uint32        `cbor:"5,keyasint"` // CRC-32 (IEEE) of the mapping pool
	Stats       compact.Stats `cbor:"6,keyasint"`
	Sources     []string      `cbor:"7,keyasint,omitempty"` // names of the raw table inputs
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("manifest: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// New creates the manifest for a compaction result.
func New(res *compact.Result, sources ...string) *Manifest {
	return &Manifest{
		Version:     Version,
		Codepoints:  len(res.Pointers) / codec.RecordSize,
		PoolSize:    len(res.Mapping),
		PointersCRC: crc32.ChecksumIEEE(res.Pointers),
		MappingCRC:  crc32.ChecksumIEEE(res.Mapping),
		Stats:       res.Stats,
		Sources:     sources,
	}
}

// Marshal serializes a manifest to CBOR bytes.
func Marshal(m *Manifest) ([]byte, error) {
	return encMode.Marshal(m)
}

// Unmarshal deserializes a manifest from CBOR bytes.
func Unmarshal(data []byte) (*Manifest, error) {
	var m Manifest
	if err := cbor.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if m.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, m.Version)
	}
	return &m, nil
}

// Check compares a pair of artifacts with the manifest.
func (m *Manifest) Check(pointers, mapping []byte) error {
	if n := len(pointers) / codec.RecordSize; n != m.Codepoints {
		return fmt.Errorf("%w: %d codepoints, manifest has %d", ErrMismatch, n, m.Codepoints)
	}
	if len(mapping) != m.PoolSize {
		return fmt.Errorf("%w: pool size %d, manifest has %d", ErrMismatch, len(mapping), m.PoolSize)
	}
	if crc := crc32.ChecksumIEEE(pointers); crc != m.PointersCRC {
		return fmt.Errorf("%w: pointer table checksum %08x, manifest has %08x", ErrMismatch, crc, m.PointersCRC)
	}
	if crc := crc32.ChecksumIEEE(mapping); crc != m.MappingCRC {
		return fmt.Errorf("%w: mapping pool checksum %08x, manifest has %08x", ErrMismatch, crc, m.MappingCRC)
	}
	return nil
}
