package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadPath = errors.New("bad path")

// KPath is a path into a node tree:
//   - "a.b" → field b of the Mapping under field a
//   - "a.*" → every field of the Mapping under a
//   - "a[0]" → element 0 of the Sequence under a
//   - "a[*]" → every element of the Sequence under a
//
// Fields address scalar keys only.
type KPath struct {
	Field    *string // Mapping key
	FieldAll bool    // Mapping wildcard .*
	Index    *int    // Sequence index
	IndexAll bool    // Sequence wildcard [*]
	Next     *KPath  // Next segment in path (nil for leaf)
}

// String returns the path text, which Parse reads back.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if (x.Field != nil || x.FieldAll) && buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(x.SegmentString())
	}
	return buf.String()
}

// SegmentString returns the text of this segment alone.
//   - KPath{Field: &"a"} → "a"
//   - KPath{Field: &"a b"} → "\"a b\""
//   - KPath{Index: &0} → "[0]"
//   - KPath{FieldAll: true} → "*"
//   - KPath{IndexAll: true} → "[*]"
func (p *KPath) SegmentString() string {
	switch {
	case p == nil:
		return ""
	case p.FieldAll:
		return "*"
	case p.Field != nil:
		if quoteField(*p.Field) {
			return strconv.Quote(*p.Field)
		}
		return *p.Field
	case p.IndexAll:
		return "[*]"
	case p.Index != nil:
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

func quoteField(f string) bool {
	return f == "" || f == "*" || strings.ContainsAny(f, ".[]\"' \t\n")
}

// Field returns a one segment path for field f.
func Field(f string) *KPath {
	return &KPath{Field: &f}
}

// Index returns a one segment path for index i.
func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// Append returns a copy of p followed by q.
func (p *KPath) Append(q *KPath) *KPath {
	if p == nil {
		return q
	}
	res := *p
	res.Next = p.Next.Append(q)
	return &res
}

// Parent returns p without its last segment, or nil.
func (p *KPath) Parent() *KPath {
	if p == nil || p.Next == nil {
		return nil
	}
	res := *p
	res.Next = p.Next.Parent()
	return &res
}

// Parse parses a path.  The empty path is the root and parses to nil.
//
//   - "a.b.c" → fields
//   - "a[0].b" → field, index, field
//   - "[*].name" → every element, then a field
//   - "\"a.b\".c" → quoted field "a.b", then c
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, nil
	}
	root := &KPath{}
	if err := parseKFrag(kpath, root, true); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadPath, kpath, err)
	}
	return root, nil
}

// parseKFrag parses a fragment of a path into parent.
func parseKFrag(frag string, parent *KPath, first bool) error {
	var rest string
	switch {
	case frag[0] == '[':
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		if frag[1:i] == "*" {
			parent.IndexAll = true
		} else {
			u, err := strconv.ParseUint(frag[1:i], 10, 31)
			if err != nil {
				return fmt.Errorf("invalid index %q", frag[1:i])
			}
			index := int(u)
			parent.Index = &index
		}
		rest = frag[i+1:]
	case frag[0] == '.' || first:
		if frag[0] == '.' {
			frag = frag[1:]
		}
		if frag == "*" || strings.HasPrefix(frag, "*.") || strings.HasPrefix(frag, "*[") {
			parent.FieldAll = true
			rest = frag[1:]
			break
		}
		field, r, err := parseKField(frag)
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	default:
		return fmt.Errorf("expected '.' or '[', got %q", frag[0])
	}
	if rest == "" {
		return nil
	}
	parent.Next = &KPath{}
	return parseKFrag(rest, parent.Next, false)
}

// parseKField parses a field name, stopping at '.' or '['.  Fields may
// be double or single quoted.
func parseKField(frag string) (field, rest string, err error) {
	if frag == "" {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	switch frag[0] {
	case '"':
		for i := 1; i < len(frag); i++ {
			switch frag[i] {
			case '\\':
				i++
			case '"':
				field, err := strconv.Unquote(frag[:i+1])
				if err != nil {
					return "", "", fmt.Errorf("invalid quoted field: %w", err)
				}
				return field, frag[i+1:], nil
			}
		}
		return "", "", fmt.Errorf("unterminated quoted field")
	case '\'':
		i := strings.IndexByte(frag[1:], '\'')
		if i == -1 {
			return "", "", fmt.Errorf("unterminated quoted field")
		}
		return frag[1 : i+1], frag[i+2:], nil
	}
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		return frag, "", nil
	}
	if i == 0 {
		return "", "", fmt.Errorf("empty field")
	}
	return frag[:i], frag[i:], nil
}

func (kp *KPath) MarshalText() ([]byte, error) {
	return []byte(kp.String()), nil
}

func (kp *KPath) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	if pp == nil {
		*kp = KPath{}
		return nil
	}
	*kp = *pp
	return nil
}
