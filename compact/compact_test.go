package compact

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/asciify/codec"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustBuild(t *testing.T, raw RawTable, opts ...Option) *Result {
	t.Helper()
	res, err := Build(raw, opts...)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if err := Verify(raw, res); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	return res
}

func decode(res *Result, cp rune) (string, bool) {
	return codec.Lookup(string(res.Pointers), string(res.Mapping), cp)
}

func TestBuildEncodesEveryKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "asciify")
	defer teardown()
	//
	raw := RawTable{"", "a", "AE", "Bei ", Unknown, "Jing "}
	res := mustBuild(t, raw)
	tests := []struct {
		cp    rune
		want  string
		known bool
	}{
		{cp: 0, want: "", known: true},
		{cp: 1, want: "a", known: true},
		{cp: 2, want: "AE", known: true},
		{cp: 3, want: "Bei ", known: true},
		{cp: 4, want: "", known: false},
		{cp: 5, want: "Jing ", known: true},
		{cp: 6, want: "", known: false},
	}
	for _, tt := range tests {
		got, known := decode(res, tt.cp)
		if got != tt.want || known != tt.known {
			t.Fatalf("decode(%d) = (%q,%v), want (%q,%v)", tt.cp, got, known, tt.want, tt.known)
		}
	}
	st := res.Stats
	if st.Codepoints != 6 || st.Empty != 1 || st.Inline != 2 || st.Pooled != 2 || st.Unknown != 1 {
		t.Fatalf("unexpected stats: %s", st)
	}
	if r, _ := codec.At(string(res.Pointers), 4); !r.IsUnknown() {
		t.Fatalf("unknown entry must carry the reserved offset, is %v", r)
	}
}

func TestBuildDeduplicates(t *testing.T) {
	raw := RawTable{"Bei ", "Bei ", "Bei ", "Jing ", "Bei "}
	res := mustBuild(t, raw)
	if string(res.Mapping) != "Bei Jing " {
		t.Fatalf("expected deduplicated pool %q, got %q", "Bei Jing ", res.Mapping)
	}
	if res.Stats.Candidates != 2 {
		t.Fatalf("expected 2 candidates, got %d", res.Stats.Candidates)
	}
}

func TestBuildFindsStringsAcrossNeighbours(t *testing.T) {
	raw := RawTable{"abc", "abc", "def", "def", "cde"}
	res := mustBuild(t, raw)
	if string(res.Mapping) != "abcdef" {
		t.Fatalf("expected pool %q, got %q", "abcdef", res.Mapping)
	}
	if res.Stats.Reused != 1 {
		t.Fatalf("expected one reused placement, got %d", res.Stats.Reused)
	}
	if s, _ := decode(res, 4); s != "cde" {
		t.Fatalf("expected cde, got %q", s)
	}
}

func TestBuildResolvesInnerSubstrings(t *testing.T) {
	raw := RawTable{"hello world", "hello world", "world", "ello"}
	res := mustBuild(t, raw)
	if string(res.Mapping) != "hello world" {
		t.Fatalf("expected single carrier in pool, got %q", res.Mapping)
	}
	if res.Stats.Canonical != 1 {
		t.Fatalf("expected 1 canonical string, got %d", res.Stats.Canonical)
	}
	r, _ := codec.At(string(res.Pointers), 2)
	if r.Offset() != 6 {
		t.Fatalf("world should point into its carrier at offset 6, is %v", r)
	}
	r, _ = codec.At(string(res.Pointers), 3)
	if r.Offset() != 1 {
		t.Fatalf("ello should point into its carrier at offset 1, is %v", r)
	}
}

func TestBuildPrefixesOnly(t *testing.T) {
	raw := RawTable{"hello world", "hello world", "hello", "world"}
	res := mustBuild(t, raw, PrefixesOnly())
	if string(res.Mapping) != "hello world" {
		t.Fatalf("expected single carrier in pool, got %q", res.Mapping)
	}
	if res.Stats.Canonical != 2 || res.Stats.Reused != 1 {
		t.Fatalf("world must be resolved on its own and found in the pool: %s", res.Stats)
	}
}

func TestBuildRejectsNonASCII(t *testing.T) {
	for _, raw := range []RawTable{
		{"a", "é"},
		{"a", "straße"},
	} {
		_, err := Build(raw)
		if !errors.Is(err, codec.ErrNonASCII) {
			t.Fatalf("expected ErrNonASCII for %q, got %v", raw, err)
		}
		if !strings.HasPrefix(err.Error(), "compact: codepoint U+0001") {
			t.Fatalf("error should name package and codepoint, is %q", err)
		}
	}
}

func TestBuildRejectsOverlongEntry(t *testing.T) {
	raw := RawTable{strings.Repeat("x", codec.MaxLength+1)}
	_, err := Build(raw)
	if !errors.Is(err, codec.ErrTooLong) {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "compact: ") {
		t.Fatalf("error should name package, is %q", err)
	}
}

func TestBuildRejectsPoolOverflow(t *testing.T) {
	raw := make(RawTable, 6000)
	for i := range raw {
		raw[i] = fmt.Sprintf("%010d|", i)
	}
	_, err := Build(raw)
	if !errors.Is(err, codec.ErrPoolOverflow) {
		t.Fatalf("expected ErrPoolOverflow, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "compact: ") {
		t.Fatalf("error should name package, is %q", err)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	raw := RawTable{"ka ", "ki ", "ku ", "ke ", "ko ", "kya ", "kyu ", "kyo ", "ka ", "ko "}
	a := mustBuild(t, raw)
	b := mustBuild(t, raw)
	if string(a.Mapping) != string(b.Mapping) || string(a.Pointers) != string(b.Pointers) {
		t.Fatalf("two builds of the same table differ")
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	raw := RawTable{"abc", "xyz"}
	res := mustBuild(t, raw)
	if err := Verify(RawTable{"abc", "xyw"}, res); !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
	if err := Verify(RawTable{"abc"}, res); !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch for length difference, got %v", err)
	}
}
