package parse

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Lines is an ordered range of lines.  Sub-ranges share storage with the
// range they come from.
type Lines []Line

// Split cuts text into numbered lines.  A trailing newline does not start
// another line.
func Split(text string) Lines {
	if text == "" {
		return nil
	}
	parts := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	res := make(Lines, len(parts))
	for i, p := range parts {
		res[i] = NewLine(p, i)
	}
	return res
}

func (ls Lines) Lines() iter.Seq[Line] {
	return slices.Values(ls)
}

func (ls Lines) Len() int {
	return len(ls)
}

func (ls Lines) index(number int) (int, bool) {
	return slices.BinarySearchFunc(ls, number, func(l Line, n int) int {
		return cmp.Compare(l.number, n)
	})
}

// Line returns the line at position number.
func (ls Lines) Line(number int) (Line, error) {
	i, ok := ls.index(number)
	if !ok {
		return Line{}, fmt.Errorf("%w: %d", ErrLineNotFound, number)
	}
	return ls[i], nil
}

// After returns every line following position number.
func (ls Lines) After(number int) Lines {
	i, ok := ls.index(number)
	if !ok {
		return nil
	}
	return ls[i+1:]
}

// Contained returns the block under the line at position number: the
// following lines indented deeper than it, up to the first line that is
// not.  Blank and comment lines never end the block.
func (ls Lines) Contained(number int) Lines {
	i, ok := ls.index(number)
	if !ok {
		return nil
	}
	base := ls[i].indent()
	j := i + 1
	for ; j < len(ls); j++ {
		if !ls[j].noise() && ls[j].indent() <= base {
			break
		}
	}
	return ls[i+1 : j]
}
