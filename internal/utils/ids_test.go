package utils

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"HTML Basics", "html-basics"},
		{"  Trim   me  ", "trim-me"},
		{"Révision CSS !", "rvision-css-"},
		{"a---b", "a-b"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"123 GO", "123-go"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewID(t *testing.T) {
	id := NewID("c")
	if !strings.HasPrefix(id, "c-") {
		t.Fatalf("expected prefix c-, got %q", id)
	}
	suffix := strings.TrimPrefix(id, "c-")
	if len(suffix) != 7 {
		t.Fatalf("expected 7-char suffix, got %q", suffix)
	}
	for _, r := range suffix {
		if !strings.ContainsRune(idAlphabet, r) {
			t.Fatalf("suffix %q contains %q outside the id alphabet", suffix, r)
		}
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		v := NewID("c")
		if seen[v] {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = true
	}
}

func TestRandomSuffixLength(t *testing.T) {
	if got := len(RandomSuffix(4)); got != 4 {
		t.Fatalf("expected 4 chars, got %d", got)
	}
}
