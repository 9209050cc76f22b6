// Package slug creates URL slugs from arbitrary Unicode text.
package slug

import (
	"regexp"
	"strings"

	"github.com/npillmayer/asciify"
)

var nonWord = regexp.MustCompile(`\W+`)

// Slug returns a slugified version of s: s is transliterated to ASCII, every
// run of non-word characters is replaced by '-', and the result is converted
// to lower case. Characters without a transliteration are dropped.
//
//	"Quita del 37,5%" => "quita-del-37-5"
//	"北亰city"         => "bei-jing-city"
func Slug(s string) string {
	decoded := asciify.TransliterateWithPlaceholder(s, "")
	dashed := nonWord.ReplaceAllString(decoded, "-")
	return strings.ToLower(strings.Trim(dashed, "-"))
}

// SlugN works like Slug, but returns at most n bytes. If n <= 0, it is
// identical to Slug.
func SlugN(s string, n int) string {
	slug := Slug(s)
	if n > 0 && len(slug) > n {
		slug = strings.Trim(slug[:n], "-")
	}
	return slug
}
