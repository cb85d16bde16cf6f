package parse

import (
	"strings"

	"github.com/yamltree/yamltree/ir"
)

// readBlock reads the content lines of a literal or folded block scalar.
// The content is de-indented by its first non-blank line and ends at the
// first non-blank line indented less than that.
func readBlock(content Lines, s ir.Style, c ir.Chomp) *ir.Node {
	ind := -1
	for l := range content.Lines() {
		if l.Trimmed() != "" {
			ind = l.indent()
			break
		}
	}
	var lines []string
	for l := range content.Lines() {
		if l.Trimmed() == "" {
			lines = append(lines, "")
			continue
		}
		if l.indent() < ind {
			break
		}
		lines = append(lines, l.text[ind:])
	}
	n := len(lines)
	for n > 0 && lines[n-1] == "" {
		n--
	}
	trailing := len(lines) - n
	body := lines[:n]

	var res string
	if s == ir.Folded {
		res = fold(body)
	} else {
		res = strings.Join(body, "\n")
	}
	switch c {
	case ir.Clip:
		if len(body) > 0 {
			res += "\n"
		}
	case ir.Keep:
		if len(body) > 0 {
			res += "\n"
		}
		res += strings.Repeat("\n", trailing)
	}
	return ir.FromBlock(res, s, c)
}

// fold joins adjacent lines with a space.  A run of n blank lines becomes
// n newlines instead.
func fold(body []string) string {
	var b strings.Builder
	started := false
	blanks := 0
	for _, l := range body {
		if l == "" {
			blanks++
			continue
		}
		switch {
		case blanks > 0:
			b.WriteString(strings.Repeat("\n", blanks))
		case started:
			b.WriteByte(' ')
		}
		b.WriteString(l)
		started = true
		blanks = 0
	}
	return b.String()
}
