package parse

import (
	"strings"

	"github.com/yamltree/yamltree/debug"
	"github.com/yamltree/yamltree/ir"
)

// view reads one block of input.  raw holds every line of the block and
// level the ones at its outer indentation, which are the lines that
// define its keys or elements.  Nothing is cached: each read re-scans.
type view struct {
	raw   Lines
	level LineSource
	opts  *parseOpts
}

func newView(raw Lines, opts *parseOpts) (*view, error) {
	level, err := Readable(raw)
	if err != nil {
		return nil, err
	}
	return &view{raw: raw, level: level, opts: opts}, nil
}

func (v *view) first() (Line, bool) {
	for l := range v.level.Lines() {
		return l, true
	}
	return Line{}, false
}

// nested returns the block belonging to a "-", "?" or ":" line.  Content
// written after the marker becomes the first line of the block, indented
// one level deeper than the marker.
func (v *view) nested(l Line) Lines {
	contained := v.raw.Contained(l.number)
	content := markerContent(l.Trimmed())
	if content == "" {
		return contained
	}
	first := NewLine(strings.Repeat(" ", l.indent()+2)+content, l.number)
	res := make(Lines, 0, len(contained)+1)
	res = append(res, first)
	return append(res, contained...)
}

func (v *view) toNode(block Lines) (*ir.Node, error) {
	sub, err := newView(block, v.opts)
	if err != nil {
		return nil, err
	}
	return sub.node()
}

// kind returns the type node would produce, looking at the first line
// only.
func (v *view) kind() ir.Type {
	l, ok := v.first()
	if !ok {
		return ir.ScalarType
	}
	t := l.Trimmed()
	switch {
	case isElement(t):
		return ir.SequenceType
	case isComplexKey(t), isContinuation(t):
		return ir.MappingType
	}
	if _, _, ok := splitKey(t); ok {
		return ir.MappingType
	}
	return inlineKind(t)
}

// inlineKind is the type of a value written inline, without reading it.
func inlineKind(t string) ir.Type {
	if isQuoted(t) {
		return ir.ScalarType
	}
	switch stripComment(t) {
	case "[]":
		return ir.SequenceType
	case "{}":
		return ir.MappingType
	}
	return ir.ScalarType
}

// node classifies the block by its first line and reads it.
func (v *view) node() (*ir.Node, error) {
	l, ok := v.first()
	if !ok {
		return ir.FromString(""), nil
	}
	t := l.Trimmed()
	switch {
	case isElement(t):
		v.logf("sequence at line %d\n", l.number)
		return (&readSequence{v}).node()
	case isComplexKey(t), isContinuation(t):
		v.logf("mapping at line %d\n", l.number)
		return (&readMapping{v}).node()
	}
	if _, _, ok := splitKey(t); ok {
		v.logf("mapping at line %d\n", l.number)
		return (&readMapping{v}).node()
	}
	if s, c, ok := blockIndicator(t); ok {
		v.logf("%s block at line %d\n", s, l.number)
		return readBlock(v.raw.After(l.number), s, c), nil
	}
	v.logf("scalar at line %d\n", l.number)
	return (&readScalar{v}).node()
}

func (v *view) logf(msg string, args ...any) {
	if !debug.Parse() {
		return
	}
	debug.Logf(msg, args...)
}

// entryValue reads the value of a key line or ":" line whose inline text
// is inline.
func (v *view) entryValue(l Line, inline string) (*ir.Node, error) {
	if inline == "" {
		return v.toNode(v.raw.Contained(l.number))
	}
	if s, c, ok := blockIndicator(inline); ok {
		return readBlock(v.raw.Contained(l.number), s, c), nil
	}
	n, err := inlineNode(inline)
	if err != nil {
		return nil, lineError(l, err)
	}
	if isQuoted(inline) || n.Type != ir.ScalarType {
		for range NoMarkers(v.raw.Contained(l.number)).Lines() {
			if n.Type != ir.ScalarType {
				return nil, lineError(l, ErrMalformedKey)
			}
			return nil, lineError(l, ErrQuote)
		}
		return n, nil
	}
	more, err := v.continued(l, v.raw.Contained(l.number))
	if err != nil {
		return nil, err
	}
	if more != "" {
		n = ir.FromString(n.String + " " + more)
	}
	return n, nil
}

// continued joins the lines of a plain scalar that starts on head and
// spans several lines.  A line that defines a key or an element cannot be
// part of the scalar: head is then a key without a separator.
func (v *view) continued(head Line, block Lines) (string, error) {
	src, err := WellIndented(NoMarkers(block))
	if err != nil {
		return "", err
	}
	var parts []string
	for l := range src.Lines() {
		t := l.Trimmed()
		if structural(t) {
			return "", lineError(head, ErrMalformedKey)
		}
		parts = append(parts, stripComment(t))
	}
	return strings.Join(parts, " "), nil
}

type readScalar struct {
	*view
}

func (r *readScalar) value() (*ir.Node, error) {
	l, _ := r.first()
	more, err := r.continued(l, r.raw.After(l.number))
	if err != nil {
		return nil, err
	}
	t := l.Trimmed()
	if more != "" && isQuoted(t) {
		return nil, lineError(l, ErrQuote)
	}
	if more != "" && inlineKind(t) != ir.ScalarType {
		return nil, lineError(l, ErrMalformedKey)
	}
	if more == "" {
		n, err := inlineNode(t)
		if err != nil {
			return nil, lineError(l, err)
		}
		return n, nil
	}
	return ir.FromString(stripComment(t) + " " + more), nil
}

func (r *readScalar) node() (*ir.Node, error) {
	return r.value()
}
