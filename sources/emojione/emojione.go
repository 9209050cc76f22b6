/*
Package emojione reads emoji names from an emojione emoji1.json file.

The input is a JSON array of objects of the form

	{ "emoji": "😂", "name": "face with tears of joy", "shortname": ":joy:" }

Each entry yields a single name: the short name without its colons if it is
shorter than the full name, the full name otherwise. Emoji consisting of
more than one codepoint are skipped. A trailing variation selector is
ignored.
*/
package emojione

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
)

type entry struct {
	Emoji     string `json:"emoji"`
	Name      string `json:"name"`
	Shortname string `json:"shortname"`
}

// Reader streams (codepoint, name) pairs from emoji1 JSON.
type Reader struct {
	dec     *json.Decoder
	started bool
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(reader)}
}

// Next returns the next pair of codepoint and name. It returns io.EOF when
// exhausted.
func (r *Reader) Next() (rune, string, error) {
	if !r.started {
		r.started = true
		tok, err := r.dec.Token()
		if err == io.EOF {
			return 0, "", io.EOF
		} else if err != nil {
			return 0, "", fmt.Errorf("emojione: %w", err)
		}
		if d, ok := tok.(json.Delim); !ok || d != '[' {
			return 0, "", fmt.Errorf("emojione: expected array, found %v", tok)
		}
	}
	for r.dec.More() {
		var e entry
		if err := r.dec.Decode(&e); err != nil {
			return 0, "", fmt.Errorf("emojione: %w", err)
		}
		ch, ok := single(e.Emoji)
		if !ok {
			continue
		}
		if name := shortest(e.Name, e.Shortname); name != "" {
			return ch, name, nil
		}
	}
	return 0, "", io.EOF
}

// shortest picks the short name, stripped of its colons, if it is shorter
// than the full name.
func shortest(name, shortname string) string {
	shortname = strings.Trim(shortname, ":")
	if shortname != "" && len(shortname) < len(name) {
		return shortname
	}
	return name
}

// single returns the codepoint of a one-character emoji, ignoring
// variation selectors 15 and 16.
func single(emoji string) (rune, bool) {
	emoji = strings.TrimRight(emoji, "\uFE0E\uFE0F")
	if utf8.RuneCountInString(emoji) != 1 {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(emoji)
	return ch, ch != utf8.RuneError
}
