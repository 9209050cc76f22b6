/*
Package emojidata reads emoji short names from emoji-data JSON files.

The input is a JSON array of objects of the form

	{ "unified": "1F984", "non_qualified": null, "short_name": "unicorn_face", "short_names": [ "unicorn_face" ] }

as published by the emoji-data project. Only emoji consisting of a single
codepoint are reported. A trailing variation selector is ignored.
*/
package emojidata

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// entry is the subset of an emoji-data record we care about.
type entry struct {
	Unified      string   `json:"unified"`
	NonQualified string   `json:"non_qualified"`
	ShortName    string   `json:"short_name"`
	ShortNames   []string `json:"short_names"`
}

// Reader streams (codepoint, short name) pairs from emoji-data JSON.
type Reader struct {
	dec     *json.Decoder
	started bool
	r       rune
	names   []string // pending names for r
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(reader)}
}

// Next returns the next pair of codepoint and raw short name.
// An emoji with several short names is reported once per name.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (rune, string, error) {
	if !r.started {
		if err := r.open(); err != nil {
			return 0, "", err
		}
	}
	for len(r.names) == 0 {
		if !r.dec.More() {
			return 0, "", io.EOF
		}
		var e entry
		if err := r.dec.Decode(&e); err != nil {
			return 0, "", fmt.Errorf("emojidata: %w", err)
		}
		ch, ok := codepoint(e)
		if !ok {
			continue
		}
		r.r = ch
		if e.ShortName != "" {
			r.names = append(r.names, e.ShortName)
		}
		for _, n := range e.ShortNames {
			if n != "" && n != e.ShortName {
				r.names = append(r.names, n)
			}
		}
	}
	name := r.names[0]
	r.names = r.names[1:]
	return r.r, name, nil
}

func (r *Reader) open() error {
	r.started = true
	tok, err := r.dec.Token()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("emojidata: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return fmt.Errorf("emojidata: expected array, found %v", tok)
	}
	return nil
}

// codepoint extracts the single codepoint of an entry. Sequences of more
// than one codepoint are rejected.
func codepoint(e entry) (rune, bool) {
	seq := e.NonQualified
	if seq == "" {
		seq = e.Unified
	}
	seq = strings.TrimSuffix(strings.ToUpper(seq), "-FE0F")
	if seq == "" || strings.Contains(seq, "-") {
		return 0, false
	}
	n, err := strconv.ParseUint(seq, 16, 32)
	if err != nil || n > 0x10FFFF {
		return 0, false
	}
	return rune(n), true
}
