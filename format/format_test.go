package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v want ErrBadFormat", err)
	}
}

func TestFromSuffix(t *testing.T) {
	tests := []struct {
		name string
		want Format
		ok   bool
	}{
		{"a.yaml", YAMLFormat, true},
		{"dir/a.yml", YAMLFormat, true},
		{"a.json", JSONFormat, true},
		{"a.txt", 0, false},
		{".json", 0, false},
	}
	for _, tc := range tests {
		got, ok := FromSuffix(tc.name)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("%s: got %s %t want %s %t", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
