package ir

// StrictNode wraps a Node so that lookups which would find nothing return
// a *NotFoundError instead.
type StrictNode struct {
	node *Node
}

func Strict(n *Node) *StrictNode {
	return &StrictNode{node: n}
}

// Node returns the wrapped node.
func (s *StrictNode) Node() *Node { return s.node }
func (s *StrictNode) Len() int { return s.node.Len() }
func (s *StrictNode) Keys() []*Node { return s.node.Keys() }
func (s *StrictNode) Children() []*Node { return s.node.Children() }

func (s *StrictNode) Value(key *Node) (*Node, error) {
	return found(s.node.Value(key), key, 0, "node")
}

func (s *StrictNode) Mapping(key *Node) (*Node, error) {
	return found(s.node.Mapping(key), key, 0, "mapping")
}

func (s *StrictNode) Sequence(key *Node) (*Node, error) {
	return found(s.node.Sequence(key), key, 0, "sequence")
}

func (s *StrictNode) Scalar(key *Node) (string, error) {
	return foundText(s.node.Scalar(key))(key, 0, "scalar")
}

func (s *StrictNode) Literal(key *Node) (string, error) {
	return foundText(s.node.Literal(key))(key, 0, "literal block scalar")
}

func (s *StrictNode) Folded(key *Node) (string, error) {
	return foundText(s.node.Folded(key))(key, 0, "folded block scalar")
}

func (s *StrictNode) Index(i int) (*Node, error) {
	return found(s.node.Index(i), nil, i, "node")
}

func (s *StrictNode) MappingAt(i int) (*Node, error) {
	return found(s.node.MappingAt(i), nil, i, "mapping")
}

func (s *StrictNode) SequenceAt(i int) (*Node, error) {
	return found(s.node.SequenceAt(i), nil, i, "sequence")
}

func (s *StrictNode) ScalarAt(i int) (string, error) {
	return foundText(s.node.ScalarAt(i))(nil, i, "scalar")
}

func found(n, key *Node, i int, want string) (*Node, error) {
	if n == nil {
		return nil, &NotFoundError{Key: key, Index: i, Want: want}
	}
	return n, nil
}

func foundText(v string, ok bool) func(*Node, int, string) (string, error) {
	return func(key *Node, i int, want string) (string, error) {
		if !ok {
			return "", &NotFoundError{Key: key, Index: i, Want: want}
		}
		return v, nil
	}
}
