package parse

import "strings"

// Line is one physical line of input and its zero-based position.
type Line struct {
	text   string
	number int
}

func NewLine(text string, number int) Line {
	return Line{text: strings.TrimSuffix(text, "\r"), number: number}
}

func (l Line) Text() string {
	return l.text
}

func (l Line) Trimmed() string {
	return strings.TrimSpace(l.text)
}

func (l Line) Number() int {
	return l.number
}

// Indentation returns the number of leading spaces.  It fails with
// ErrIndentation when that number is odd or when a tab follows them.
func (l Line) Indentation() (int, error) {
	n := l.indent()
	if n%2 != 0 || (n < len(l.text) && l.text[n] == '\t') {
		return n, lineError(l, ErrIndentation)
	}
	return n, nil
}

func (l Line) indent() int {
	return len(l.text) - len(strings.TrimLeft(l.text, " "))
}

// noise lines are blank or comments.
func (l Line) noise() bool {
	t := l.Trimmed()
	return t == "" || t[0] == '#'
}

// marker lines start or end a document, or carry a directive.
func (l Line) marker() bool {
	if l.indent() != 0 {
		return false
	}
	t := l.Trimmed()
	switch {
	case t == "---", t == "...":
		return true
	case strings.HasPrefix(t, "--- "), strings.HasPrefix(t, "%"):
		return true
	}
	return false
}
