/*
Package gemoji reads emoji aliases from a gemoji database.

The input is the JSON array of github/gemoji's db/emoji.json:

	{ "emoji": "☕", "description": "hot beverage", "aliases": [ "coffee" ] }

Entries without an emoji character (custom emoji) and emoji consisting of
more than one codepoint are skipped. A trailing variation selector is ignored.
*/
package gemoji

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
)

type entry struct {
	Emoji   string   `json:"emoji"`
	Aliases []string `json:"aliases"`
}

// Reader streams (codepoint, alias) pairs from gemoji JSON.
type Reader struct {
	dec     *json.Decoder
	started bool
	r       rune
	aliases []string
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(reader)}
}

// Next returns the next pair of codepoint and alias. It returns io.EOF when
// exhausted.
func (r *Reader) Next() (rune, string, error) {
	if !r.started {
		r.started = true
		tok, err := r.dec.Token()
		if err == io.EOF {
			return 0, "", io.EOF
		} else if err != nil {
			return 0, "", fmt.Errorf("gemoji: %w", err)
		}
		if d, ok := tok.(json.Delim); !ok || d != '[' {
			return 0, "", fmt.Errorf("gemoji: expected array, found %v", tok)
		}
	}
	for len(r.aliases) == 0 {
		if !r.dec.More() {
			return 0, "", io.EOF
		}
		var e entry
		if err := r.dec.Decode(&e); err != nil {
			return 0, "", fmt.Errorf("gemoji: %w", err)
		}
		ch, ok := single(e.Emoji)
		if !ok {
			continue
		}
		r.r = ch
		r.aliases = append(r.aliases[:0], e.Aliases...)
	}
	alias := r.aliases[0]
	r.aliases = r.aliases[1:]
	return r.r, alias, nil
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
