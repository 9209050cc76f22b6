/*
Package tables carries the generated transliteration table.

The artifacts pointers.bin, mapping.txt and manifest.cbor are produced by
cmd/asciify-compact into directory data and embedded into the binary. They
have to be regenerated whenever package sources changes. Without them,
package asciify falls back to building its default table from package
sources at first use.
*/
package tables

import (
	"embed"
	"io/fs"
)

//go:generate go run ../cmd/asciify-compact -out data

//go:embed data
var data embed.FS

// FS returns the embedded artifacts directory.
func FS() fs.FS {
	sub, err := fs.Sub(data, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
