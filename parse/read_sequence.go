package parse

import "github.com/yamltree/yamltree/ir"

type readSequence struct {
	*view
}

// elements returns the element lines in document order.
func (r *readSequence) elements() ([]Line, error) {
	var res []Line
	for l := range r.level.Lines() {
		if !isElement(l.Trimmed()) {
			return nil, lineError(l, ErrMalformedElement)
		}
		res = append(res, l)
	}
	return res, nil
}

func (r *readSequence) element(l Line) (*ir.Node, error) {
	if s, c, ok := blockIndicator(markerContent(l.Trimmed())); ok {
		return readBlock(r.raw.Contained(l.number), s, c), nil
	}
	return r.toNode(r.nested(l))
}

func (r *readSequence) len() (int, error) {
	es, err := r.elements()
	return len(es), err
}

// index returns element i, or nil when there is none.
func (r *readSequence) index(i int) (*ir.Node, error) {
	es, err := r.elements()
	if err != nil || i < 0 || i >= len(es) {
		return nil, err
	}
	return r.element(es[i])
}

func (r *readSequence) node() (*ir.Node, error) {
	n, err := r.len()
	if err != nil {
		return nil, err
	}
	vals := make([]*ir.Node, n)
	for i := range n {
		v, err := r.index(i)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return ir.FromSlice(vals), nil
}
