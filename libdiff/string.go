package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff compares from and to line by line.  Each line of the result
// is prefixed by "- " when only in from, "+ " when only in to, and "= "
// otherwise.
func LineDiff(from, to string) string {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var sb strings.Builder
	for _, diff := range diffs {
		prefix := "= "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
