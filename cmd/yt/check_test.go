package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCheckDocs(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		strict bool
		ok     bool
		prefix string
	}{
		{name: "fine", in: "a: 1\n---\n- x\n", ok: true, prefix: "f.yaml: ok"},
		{name: "indentation", in: "a: 1\n---\nb:\n   c: d\n", prefix: "f.yaml:4: "},
		{name: "duplicates allowed", in: "a: 1\na: 2\n", ok: true, prefix: "f.yaml: ok"},
		{name: "duplicates strict", in: "a: 1\na: 2\n", strict: true, prefix: "f.yaml:2: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &CheckConfig{MainConfig: &MainConfig{Strict: tt.strict}}
			ok, err := checkDocs(cfg, &buf, []byte(tt.in), "f.yaml")
			if err != nil {
				t.Fatal(err)
			}
			if ok != tt.ok {
				t.Errorf("ok %t", ok)
			}
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("got %q want prefix %q", buf.String(), tt.prefix)
			}
		})
	}
}
