package libdiff

// Op is the kind of a Change.
type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "<unknown op>"
}

// Reverse returns the inverse of o.
func (o Op) Reverse() Op {
	switch o {
	case Insert:
		return Delete
	case Delete:
		return Insert
	}
	return o
}
