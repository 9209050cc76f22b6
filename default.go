package asciify

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/npillmayer/asciify/compact"
	"github.com/npillmayer/asciify/sources"
	"github.com/npillmayer/asciify/tables"
)

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table. It is loaded on first use from the
// artifacts embedded in package tables. Only if these are missing is the
// table built from package sources, which takes a moment.
//
// Default panics if the built-in data is broken.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := LoadTable(tables.FS())
		if err == nil {
			tracer().Debugf("using embedded table with %d codepoints", t.Len())
			defaultTable = t
			return
		}
		if !errors.Is(err, fs.ErrNotExist) {
			panic(fmt.Sprintf("asciify: embedded table is broken: %v", err))
		}
		tracer().Errorf("no embedded table, building from sources")
		if defaultTable, err = buildDefault(); err != nil {
			panic(fmt.Sprintf("asciify: cannot build default table: %v", err))
		}
	})
	return defaultTable
}

func buildDefault() (*Table, error) {
	raw, err := sources.Default()
	if err != nil {
		return nil, err
	}
	res, err := compact.Build(raw)
	if err != nil {
		return nil, err
	}
	return NewTable(res.Pointers, res.Mapping)
}
