package codec

import (
	"errors"
	"testing"
)

func TestInlineRecords(t *testing.T) {
	tests := []struct {
		in   string
		want Record
	}{
		{in: "", want: Record{}},
		{in: "a", want: Record{Payload: [2]byte{'a', 0}, Length: 1}},
		{in: "AE", want: Record{Payload: [2]byte{'A', 'E'}, Length: 2}},
	}
	for _, tt := range tests {
		r, err := Inline(tt.in)
		if err != nil {
			t.Fatalf("Inline(%q) failed: %v", tt.in, err)
		}
		if r != tt.want {
			t.Fatalf("Inline(%q) = %v, want %v", tt.in, r, tt.want)
		}
		if !r.IsInline() || r.IsUnknown() {
			t.Fatalf("Inline(%q) should be inline and known", tt.in)
		}
	}
}

func TestInlineRejects(t *testing.T) {
	if _, err := Inline("é"); !errors.Is(err, ErrNonASCII) {
		t.Fatalf("expected ErrNonASCII, got %v", err)
	}
	if _, err := Inline("abc"); !errors.Is(err, ErrTooLong) {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
}

func TestPooledRecord(t *testing.T) {
	r, err := Pooled(0x1234, 5)
	if err != nil {
		t.Fatal(err)
	}
	if r.Payload != [2]byte{0x34, 0x12} {
		t.Fatalf("offset must be little-endian, got % x", r.Payload)
	}
	if r.Offset() != 0x1234 || r.Length != 5 {
		t.Fatalf("unexpected record %v", r)
	}
	if r.IsInline() || r.IsUnknown() {
		t.Fatalf("pooled record misclassified: %v", r)
	}
	if _, err := Pooled(MaxPoolSize-2, 3); !errors.Is(err, ErrPoolOverflow) {
		t.Fatalf("expected ErrPoolOverflow, got %v", err)
	}
	if _, err := Pooled(0, 2); !errors.Is(err, ErrTooLong) {
		t.Fatalf("expected length error for short pooled record, got %v", err)
	}
}

func TestUnknownRecord(t *testing.T) {
	r := Unknown(3)
	if !r.IsUnknown() || r.Offset() != UnknownOffset || r.Length != 3 {
		t.Fatalf("unexpected unknown record %v", r)
	}
	if r = Unknown(0); r.IsInline() {
		t.Fatalf("unknown record must never read as inline: %v", r)
	}
}

func TestLookup(t *testing.T) {
	const pool = "Bei Jing "
	pointers := make([]byte, 5*RecordSize)
	mustInline(t, "A").Put(pointers, 0)
	mustInline(t, "AE").Put(pointers, 1)
	mustPooled(t, 0, 4).Put(pointers, 2)
	mustPooled(t, 4, 5).Put(pointers, 3)
	Unknown(3).Put(pointers, 4)
	tests := []struct {
		cp    rune
		want  string
		known bool
	}{
		{cp: 0, want: "A", known: true},
		{cp: 1, want: "AE", known: true},
		{cp: 2, want: "Bei ", known: true},
		{cp: 3, want: "Jing ", known: true},
		{cp: 4, want: "", known: false},
		{cp: 5, want: "", known: false},
		{cp: -1, want: "", known: false},
		{cp: 0x10FFFF, want: "", known: false},
	}
	for _, tt := range tests {
		got, known := Lookup(string(pointers), pool, tt.cp)
		if got != tt.want || known != tt.known {
			t.Fatalf("Lookup(%#x) = (%q,%v), want (%q,%v)", tt.cp, got, known, tt.want, tt.known)
		}
	}
	if r, ok := At(string(pointers), 3); !ok || r.Offset() != 4 {
		t.Fatalf("At(3) = %v, %v", r, ok)
	}
}

func TestLookupOutOfPool(t *testing.T) {
	pointers := make([]byte, RecordSize)
	mustPooled(t, 10, 4).Put(pointers, 0)
	if s, ok := Lookup(string(pointers), "short", 0); ok {
		t.Fatalf("slice beyond the pool must decode as unknown, got %q", s)
	}
}

func TestCheck(t *testing.T) {
	if err := Check(make([]byte, 7), nil); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if err := Check(nil, make([]byte, MaxPoolSize)); !errors.Is(err, ErrPoolOverflow) {
		t.Fatalf("expected ErrPoolOverflow, got %v", err)
	}
	if err := Check(make([]byte, 6), []byte("abc")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func mustInline(t *testing.T, s string) Record {
	t.Helper()
	r, err := Inline(s)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func mustPooled(t *testing.T, offset, length int) Record {
	t.Helper()
	r, err := Pooled(offset, length)
	if err != nil {
		t.Fatal(err)
	}
	return r
}
