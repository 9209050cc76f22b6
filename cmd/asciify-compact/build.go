package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/asciify/codec"
	"github.com/npillmayer/asciify/compact"
	"github.com/npillmayer/asciify/manifest"
	"github.com/npillmayer/asciify/sources"
	"github.com/npillmayer/asciify/sources/emojidata"
	"github.com/npillmayer/asciify/sources/emojione"
	"github.com/npillmayer/asciify/sources/gemoji"
)

// Run builds, verifies and writes the table artifacts as configured.
func Run(conf *Config) error {
	raw, names, err := rawTable(conf)
	if err != nil {
		return err
	}
	var opts []compact.Option
	if conf.Sources.PrefixesOnly {
		opts = append(opts, compact.PrefixesOnly())
	}
	res, err := compact.Build(raw, opts...)
	if err != nil {
		return fmt.Errorf("compaction failed: %w", err)
	}
	if err := compact.Verify(raw, res); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	m, err := manifest.Marshal(manifest.New(res, names...))
	if err != nil {
		return fmt.Errorf("cannot encode manifest: %w", err)
	}
	return write(conf.Output.Dir, map[string][]byte{
		codec.PointersFile: res.Pointers,
		codec.MappingFile:  res.Mapping,
		manifest.File:      m,
	})
}

// rawTable merges the base table with the configured name files. It returns
// the table and the names of all inputs.
func rawTable(conf *Config) (compact.RawTable, []string, error) {
	names := []string{"unidecode"}
	g, gname, err := open(conf.Sources.Gemoji, sources.GemojiFile)
	if err != nil {
		return nil, nil, err
	}
	defer g.Close()
	o, oname, err := open(conf.Sources.EmojiOne, sources.EmojiOneFile)
	if err != nil {
		return nil, nil, err
	}
	defer o.Close()
	e, ename, err := open(conf.Sources.EmojiData, sources.EmojiDataFile)
	if err != nil {
		return nil, nil, err
	}
	defer e.Close()
	names = append(names, gname, oname, ename)
	raw, err := sources.Merge(sources.Unidecode(),
		gemoji.NewReader(g), emojione.NewReader(o), emojidata.NewReader(e))
	if err != nil {
		return nil, nil, fmt.Errorf("cannot merge emoji names: %w", err)
	}
	return raw, names, nil
}

// open opens path, or the embedded file fallback if path is empty.
func open(path, fallback string) (io.ReadCloser, string, error) {
	if path == "" {
		f, err := sources.Data().Open(fallback)
		if err != nil {
			return nil, "", err
		}
		return f, "embedded:" + fallback, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("cannot open name file: %w", err)
	}
	return f, filepath.Base(path), nil
}

func write(dir string, artifacts map[string][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}
	for name, data := range artifacts {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", path, err)
		}
		tracer().Infof("wrote %s (%d bytes)", path, len(data))
	}
	return nil
}

