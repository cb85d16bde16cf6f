package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/parse"

	"github.com/scott-cotton/cli"
)

func TestMatchDocs(t *testing.T) {
	in := "a: 1\nb: 2\n---\na: 3\n---\na: 1\nc: 4\n"
	m, err := parse.ParseString("a: 1")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		trim bool
		want []string
	}{
		{trim: false, want: []string{"a: 1\nb: 2", "a: 1\nc: 4"}},
		{trim: true, want: []string{"a: 1", "a: 1"}},
	}
	for _, tt := range tests {
		cfg := &MatchConfig{MainConfig: &MainConfig{}, Trim: tt.trim}
		res, err := matchDocs(nil, cfg, m, []byte(in), "in")
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, y := range res {
			got = append(got, encode.MustString(y))
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("trim %t (-want +got):\n%s", tt.trim, diff)
		}
	}
}

func TestGetish(t *testing.T) {
	n, err := getish(true, false, nil, "a: b", nil)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := n.Scalar(n.Keys()[0]); s != "b" {
		t.Errorf("got %q", s)
	}
	n, err = getish(false, true, strings.NewReader("x: y"), "-", nil)
	if err != nil {
		t.Fatal(err)
	}
	if n.Len() != 1 {
		t.Errorf("got %d entries", n.Len())
	}
	if _, err := getish(true, true, nil, "a: b", nil); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}
