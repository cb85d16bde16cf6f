package parse

import "iter"

// LineSource is anything that yields lines in position order.  Lines is
// one; the filters below wrap one.
type LineSource interface {
	Lines() iter.Seq[Line]
}

// Readable applies the filters used for reading, in order: markers and
// noise go first, indentation is then checked, and finally iteration is
// restricted to the outermost level.  Content before the first line at
// that level belongs to no key or element and fails with ErrIndentation.
func Readable(src LineSource) (LineSource, error) {
	checked, err := WellIndented(NoMarkers(src))
	if err != nil {
		return nil, err
	}
	level := newSameLevel(checked)
	for l := range checked.Lines() {
		if l.indent() != level.level {
			return nil, lineError(l, ErrIndentation)
		}
		break
	}
	return level, nil
}

type noMarkers struct {
	src LineSource
}

// NoMarkers drops document markers, directives, blank lines and comments.
func NoMarkers(src LineSource) LineSource {
	return noMarkers{src: src}
}

func (f noMarkers) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for l := range f.src.Lines() {
			if l.noise() || l.marker() {
				continue
			}
			if !yield(l) {
				return
			}
		}
	}
}

type wellIndented struct {
	src LineSource
}

// WellIndented checks every line of src up front and returns the first
// indentation error.
func WellIndented(src LineSource) (LineSource, error) {
	for l := range src.Lines() {
		if _, err := l.Indentation(); err != nil {
			return nil, err
		}
	}
	return wellIndented{src: src}, nil
}

func (f wellIndented) Lines() iter.Seq[Line] {
	return f.src.Lines()
}

type sameLevel struct {
	src   LineSource
	level int
}

// SameLevel yields only the lines at the smallest indentation in src.
func SameLevel(src LineSource) LineSource {
	return newSameLevel(src)
}

func newSameLevel(src LineSource) *sameLevel {
	level := -1
	for l := range src.Lines() {
		if i := l.indent(); level < 0 || i < level {
			level = i
		}
	}
	return &sameLevel{src: src, level: level}
}

func (f *sameLevel) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for l := range f.src.Lines() {
			if l.indent() != f.level {
				continue
			}
			if !yield(l) {
				return
			}
		}
	}
}
