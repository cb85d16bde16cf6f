package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yamltree/yamltree/format"
	"github.com/yamltree/yamltree/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w.  An empty root Mapping writes nothing; any
// other output ends with a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if es.format.IsJSON() {
		return encodeJSON(node, w, es)
	}
	switch node.Type {
	case ir.MappingType, ir.SequenceType:
		if node.IsEmpty() && node.Type == ir.MappingType {
			return nil
		}
		if node.IsEmpty() {
			return writeString(w, applyColor(es, ir.SequenceType, SepColor, "[]")+"\n")
		}
		return encodeBlock(node, w, 0, es)
	case ir.ScalarType:
		return encodeEntry("", node, w, 0, es)
	}
	return fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	a, err := node.ToAny()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	d, err := json.MarshalIndent(a, "", strings.Repeat(" ", es.indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d)+"\n")
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) pad(depth int) string {
	return strings.Repeat(" ", depth*es.indent)
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

// encodeBlock writes the entries of a non-empty Mapping or the elements
// of a non-empty Sequence, one per line at depth.
func encodeBlock(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	if node.Type == ir.SequenceType {
		for _, v := range node.Values {
			sep := applyColor(es, ir.SequenceType, SepColor, "-")
			if err := encodeEntry(sep, v, w, depth, es); err != nil {
				return err
			}
		}
		return nil
	}
	for i, k := range node.Fields {
		v := node.Values[i]
		if k.Type == ir.ScalarType {
			field := applyColor(es, ir.MappingType, FieldColor, quoteString(k.String))
			field += applyColor(es, ir.MappingType, SepColor, ":")
			if err := encodeEntry(field, v, w, depth, es); err != nil {
				return err
			}
			continue
		}
		q := applyColor(es, ir.MappingType, SepColor, "?")
		if err := encodeEntry(q, k, w, depth, es); err != nil {
			return err
		}
		c := applyColor(es, ir.MappingType, SepColor, ":")
		if err := encodeEntry(c, v, w, depth, es); err != nil {
			return err
		}
	}
	return nil
}

// encodeEntry writes marker (a key, "-", "?" or ":") at depth followed by
// v, inline when v fits on the line and on the lines below otherwise.
func encodeEntry(marker string, v *ir.Node, w io.Writer, depth int, es *EncState) error {
	head := es.pad(depth) + marker
	if marker != "" {
		head += " "
	}
	switch v.Type {
	case ir.ScalarType:
		if style, chomp, lines, ok := blockForm(v); ok {
			ind := applyColor(es, ir.ScalarType, SepColor, style.Indicator(chomp))
			if err := writeString(w, head+ind+"\n"); err != nil {
				return err
			}
			return encodeBlockLines(lines, w, depth+1, es)
		}
		val := applyColor(es, ir.ScalarType, ValueColor, quoteString(v.String))
		return writeString(w, head+val+"\n")
	case ir.SequenceType, ir.MappingType:
		if v.IsEmpty() {
			empty := "{}"
			if v.Type == ir.SequenceType {
				empty = "[]"
			}
			return writeString(w, head+applyColor(es, v.Type, SepColor, empty)+"\n")
		}
		if err := writeString(w, strings.TrimSuffix(head, " ")+"\n"); err != nil {
			return err
		}
		return encodeBlock(v, w, depth+1, es)
	}
	return fmt.Errorf("%w: unknown node type %s", ErrEncoding, v.Type)
}

func encodeBlockLines(lines []string, w io.Writer, depth int, es *EncState) error {
	pad := es.pad(depth)
	for _, ln := range lines {
		if ln == "" {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		ln = applyColor(es, ir.ScalarType, LiteralMultiColor, ln)
		if err := writeString(w, pad+ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// blockForm decides whether v is written as a block scalar and returns
// the lines to write, trailing blank lines included.  Multi-line plain
// scalars become literal blocks.  Text a block cannot carry exactly, such
// as a line starting with whitespace, is left to quoting.
func blockForm(v *ir.Node) (ir.Style, ir.Chomp, []string, bool) {
	style := v.Style
	if style == ir.Plain {
		if !strings.Contains(v.String, "\n") {
			return style, ir.Clip, nil, false
		}
		style = ir.Literal
	}
	body := strings.TrimRight(v.String, "\n")
	if body == "" {
		return style, ir.Clip, nil, false
	}
	segs := strings.Split(body, "\n")
	for _, s := range segs {
		if !blockSafe(s) {
			return style, ir.Clip, nil, false
		}
	}
	var lines []string
	if style == ir.Folded {
		seen := false
		for _, s := range segs {
			if s == "" {
				lines = append(lines, "")
				continue
			}
			if seen {
				lines = append(lines, "")
			}
			lines = append(lines, s)
			seen = true
		}
	} else {
		lines = segs
	}
	chomp := ir.Strip
	switch n := len(v.String) - len(body); {
	case n == 1 && v.Chomp == ir.Keep:
		chomp = ir.Keep
	case n == 1:
		chomp = ir.Clip
	case n > 1:
		chomp = ir.Keep
		for range n - 1 {
			lines = append(lines, "")
		}
	}
	return style, chomp, lines, true
}

func blockSafe(s string) bool {
	if s == "" {
		return true
	}
	if s[0] == ' ' || s[0] == '\t' {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			return false
		}
	}
	return true
}

// String quoting helper

func quoteString(v string) string {
	if needsQuote(v) {
		return strconv.Quote(v)
	}
	return v
}

// needsQuote reports whether v, written plainly, would read back as
// something else.
func needsQuote(v string) bool {
	switch v {
	case "", "[]", "{}", "-", "?", ":":
		return true
	}
	if v != strings.TrimSpace(v) {
		return true
	}
	for _, r := range v {
		if unicode.IsControl(r) || r == utf8.RuneError {
			return true
		}
	}
	if strings.ContainsRune("#|>'\"[]{}%!&*@,`", rune(v[0])) {
		return true
	}
	for _, p := range []string{"- ", "? ", ": ", "---", "..."} {
		if strings.HasPrefix(v, p) {
			return true
		}
	}
	return strings.Contains(v, ": ") || strings.Contains(v, " #") || strings.HasSuffix(v, ":")
}
