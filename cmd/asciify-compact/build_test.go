package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/asciify"
	"github.com/npillmayer/asciify/manifest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRunWritesLoadableTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "asciify")
	defer teardown()
	//
	conf, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	conf.Output.Dir = filepath.Join(t.TempDir(), "data")
	if err := Run(conf); err != nil {
		t.Fatal(err)
	}
	table, err := asciify.LoadTable(os.DirFS(conf.Output.Dir))
	if err != nil {
		t.Fatal(err)
	}
	if s := table.Transliterate("北亰🦄"); s != "Bei Jing unicorn face" {
		t.Fatalf("unexpected transliteration %q", s)
	}
	data, err := os.ReadFile(filepath.Join(conf.Output.Dir, manifest.File))
	if err != nil {
		t.Fatal(err)
	}
	m, err := manifest.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if m.Codepoints != table.Len() || len(m.Sources) != 4 {
		t.Fatalf("manifest does not describe the table: %+v", m)
	}
}

func TestRunWithNameFile(t *testing.T) {
	dir := t.TempDir()
	names := filepath.Join(dir, "gemoji.json")
	err := os.WriteFile(names, []byte(`[{"emoji": "🦄", "aliases": ["unicorn"]}]`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	conf, _ := LoadConfig("")
	conf.Output.Dir = filepath.Join(dir, "out")
	conf.Sources.Gemoji = names
	if err := Run(conf); err != nil {
		t.Fatal(err)
	}
	table, err := asciify.LoadTable(os.DirFS(conf.Output.Dir))
	if err != nil {
		t.Fatal(err)
	}
	if s := table.Transliterate("🦄!"); s != "unicorn !" {
		t.Fatalf("shorter alias should win, got %q", s)
	}
	conf.Sources.Gemoji = filepath.Join(dir, "missing.json")
	if err := Run(conf); err == nil {
		t.Fatalf("expected error for missing name file")
	}
}

func TestRunWithEmojiOneFile(t *testing.T) {
	dir := t.TempDir()
	names := filepath.Join(dir, "emoji1.json")
	err := os.WriteFile(names, []byte(`[{"emoji": "🦄", "name": "unicorn face", "shortname": ":unicorn:"}]`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	conf, _ := LoadConfig("")
	conf.Output.Dir = filepath.Join(dir, "out")
	conf.Sources.EmojiOne = names
	if err := Run(conf); err != nil {
		t.Fatal(err)
	}
	table, err := asciify.LoadTable(os.DirFS(conf.Output.Dir))
	if err != nil {
		t.Fatal(err)
	}
	if s := table.Transliterate("🦄🔥"); s != "unicorn fire" {
		t.Fatalf("short name should win, got %q", s)
	}
	conf.Sources.EmojiOne = filepath.Join(dir, "missing.json")
	if err := Run(conf); err == nil {
		t.Fatalf("expected error for missing name file")
	}
}
