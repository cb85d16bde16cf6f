package ir

// Style records how a scalar was, or should be, written.  It is
// presentation only and takes no part in Compare, Equal or Hash.
type Style int

const (
	Plain Style = iota
	Literal
	Folded
)

func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Literal:
		return "literal"
	case Folded:
		return "folded"
	}
	return "<unknown style>"
}

// Chomp is the trailing newline policy of a block scalar.
type Chomp int

const (
	Clip Chomp = iota
	Strip
	Keep
)

// Indicator returns the block header for s, such as "|" or ">-".  It
// returns "" for Plain.
func (s Style) Indicator(c Chomp) string {
	var res string
	switch s {
	case Literal:
		res = "|"
	case Folded:
		res = ">"
	default:
		return ""
	}
	switch c {
	case Strip:
		res += "-"
	case Keep:
		res += "+"
	}
	return res
}

// ParseIndicator is the inverse of Indicator.
func ParseIndicator(v string) (Style, Chomp, bool) {
	if v == "" {
		return Plain, Clip, false
	}
	var s Style
	switch v[0] {
	case '|':
		s = Literal
	case '>':
		s = Folded
	default:
		return Plain, Clip, false
	}
	switch v[1:] {
	case "":
		return s, Clip, true
	case "-":
		return s, Strip, true
	case "+":
		return s, Keep, true
	}
	return Plain, Clip, false
}
