package parse

import (
	"strconv"
	"strings"

	"github.com/yamltree/yamltree/ir"
)

func isElement(t string) bool {
	return t == "-" || strings.HasPrefix(t, "- ")
}

func isComplexKey(t string) bool {
	return t == "?" || strings.HasPrefix(t, "? ")
}

func isContinuation(t string) bool {
	return t == ":" || strings.HasPrefix(t, ": ")
}

// structural reports whether t defines an entry or an element, and so
// cannot continue a plain scalar.
func structural(t string) bool {
	if isElement(t) || isComplexKey(t) || isContinuation(t) {
		return true
	}
	_, _, ok := splitKey(t)
	return ok
}

// markerContent returns what follows a "-", "?" or ":" marker.
func markerContent(t string) string {
	if len(t) < 2 {
		return ""
	}
	return strings.TrimSpace(t[2:])
}

// splitKey finds the key separator of t: the first ':' outside a leading
// quoted key that ends t or is followed by a space.  An unquoted " #"
// before any separator starts a comment.
func splitKey(t string) (key, value string, ok bool) {
	start := 0
	if t != "" && (t[0] == '"' || t[0] == '\'') {
		end := closingQuote(t)
		if end < 0 {
			return "", "", false
		}
		start = end + 1
	}
	for i := start; i < len(t); i++ {
		switch t[i] {
		case '#':
			if i > 0 && t[i-1] == ' ' {
				return "", "", false
			}
		case ':':
			if i+1 == len(t) || t[i+1] == ' ' {
				return strings.TrimSpace(t[:i]), strings.TrimSpace(t[i+1:]), true
			}
		}
	}
	return "", "", false
}

// closingQuote returns the index of the quote closing the one at t[0], or
// -1.
func closingQuote(t string) int {
	q := t[0]
	for i := 1; i < len(t); i++ {
		switch {
		case q == '"' && t[i] == '\\':
			i++
		case q == '\'' && t[i] == '\'' && i+1 < len(t) && t[i+1] == '\'':
			i++
		case t[i] == q:
			return i
		}
	}
	return -1
}

func isQuoted(v string) bool {
	return v != "" && (v[0] == '"' || v[0] == '\'')
}

// unquote removes the quotes of v.  Only a comment may follow the closing
// quote.
func unquote(v string) (string, error) {
	end := closingQuote(v)
	if end < 0 {
		return "", ErrQuote
	}
	if rest := strings.TrimSpace(v[end+1:]); rest != "" && rest[0] != '#' {
		return "", ErrQuote
	}
	if v[0] == '\'' {
		return strings.ReplaceAll(v[1:end], "''", "'"), nil
	}
	s, err := strconv.Unquote(v[:end+1])
	if err != nil {
		return "", ErrQuote
	}
	return s, nil
}

func stripComment(v string) string {
	if strings.HasPrefix(v, "#") {
		return ""
	}
	if i := strings.Index(v, " #"); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

func keyText(k string) (string, error) {
	if isQuoted(k) {
		return unquote(k)
	}
	return k, nil
}

// inlineNode reads a value written on the same line as its key or marker.
func inlineNode(v string) (*ir.Node, error) {
	if isQuoted(v) {
		s, err := unquote(v)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
	switch v = stripComment(v); v {
	case "[]":
		return ir.FromSlice(nil), nil
	case "{}":
		return ir.FromKeyVals(nil), nil
	}
	return ir.FromString(v), nil
}

// blockIndicator reports whether an inline value opens a block scalar.
func blockIndicator(v string) (ir.Style, ir.Chomp, bool) {
	if isQuoted(v) {
		return ir.Plain, ir.Clip, false
	}
	return ir.ParseIndicator(stripComment(v))
}
