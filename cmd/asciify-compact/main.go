/*
Command asciify-compact builds the binary transliteration table.

It assembles the raw table from the unidecode data and emoji name files,
compacts it, verifies that every codepoint decodes to its raw entry, and
writes pointers.bin, mapping.txt and manifest.cbor to the output directory.

Usage:

	asciify-compact [-config build.toml] [-out dir] [-trace level]
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer writes to trace with key 'asciify'
func tracer() tracing.Trace {
	return tracing.Select("asciify")
}

func main() {
	configPath := flag.String("config", "", "TOML build configuration")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	traceLevel := flag.String("trace", "", "Trace level: Error, Info or Debug (overrides config)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: asciify-compact [options]\n\n")
		fmt.Fprintf(os.Stderr, "Builds the transliteration table artifacts.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  asciify-compact -out tables/data         # Build from embedded sources\n")
		fmt.Fprintf(os.Stderr, "  asciify-compact -config build.toml -trace Debug\n")
	}
	flag.Parse()

	conf, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *outDir != "" {
		conf.Output.Dir = *outDir
	}
	if *traceLevel != "" {
		conf.Tracing.Level = *traceLevel
	}
	if err := setupTracing(conf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := Run(conf); err != nil {
		tracer().Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupTracing(conf *Config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
