package parse

import (
	"errors"
	"slices"

	"github.com/yamltree/yamltree/ir"
)

type readMapping struct {
	*view
}

// entry is a key-defining line.  Scalar keys carry the text following
// the separator in inline.
type entry struct {
	line    Line
	key     *ir.Node
	complex bool
	inline  string
}

// entries returns the entries in document order.
func (r *readMapping) entries() ([]entry, error) {
	var res []entry
	afterComplex := false
	for l := range r.level.Lines() {
		t := l.Trimmed()
		switch {
		case isContinuation(t):
			if !afterComplex {
				return nil, lineError(l, ErrMalformedKey)
			}
			afterComplex = false
			continue
		case isComplexKey(t):
			k, err := r.toNode(r.nested(l))
			if err != nil {
				return nil, err
			}
			res = append(res, entry{line: l, key: k, complex: true})
			afterComplex = true
			continue
		case isElement(t):
			return nil, lineError(l, ErrMalformedKey)
		}
		k, inline, ok := splitKey(t)
		if !ok {
			return nil, lineError(l, ErrMalformedKey)
		}
		s, err := keyText(k)
		if err != nil {
			return nil, lineError(l, err)
		}
		res = append(res, entry{line: l, key: ir.FromString(s), inline: inline})
		afterComplex = false
	}
	return res, nil
}

func checkDuplicates(es []entry) error {
	for i := range es {
		for j := range i {
			if ir.Equal(es[i].key, es[j].key) {
				return lineError(es[i].line, ErrDuplicateKey)
			}
		}
	}
	return nil
}

// keys returns the distinct keys in Compare order.
func (r *readMapping) keys() ([]*ir.Node, error) {
	es, err := r.entries()
	if err != nil {
		return nil, err
	}
	return distinctKeys(es), nil
}

func distinctKeys(es []entry) []*ir.Node {
	res := make([]*ir.Node, len(es))
	for i := range es {
		res[i] = es[i].key
	}
	slices.SortStableFunc(res, ir.Compare)
	return slices.CompactFunc(res, ir.Equal)
}

// find returns the last entry whose key equals key.
func (r *readMapping) find(key *ir.Node) (entry, bool, error) {
	es, err := r.entries()
	if err != nil {
		return entry{}, false, err
	}
	for i := len(es) - 1; i >= 0; i-- {
		if ir.Equal(es[i].key, key) {
			return es[i], true, nil
		}
	}
	return entry{}, false, nil
}

// valueLine returns the ":" line holding the value of a complex key.  It
// directly follows the key block, at the indentation of the "?" line.
func (r *readMapping) valueLine(e entry) (Line, bool) {
	next := e.line.number + len(r.raw.Contained(e.line.number)) + 1
	cl, err := r.raw.Line(next)
	if errors.Is(err, ErrLineNotFound) {
		return Line{}, false
	}
	if cl.indent() != e.line.indent() || !isContinuation(cl.Trimmed()) {
		return Line{}, false
	}
	return cl, true
}

// kind returns the type of the value of e without reading it.  ok is
// false when the value is absent.
func (r *readMapping) kind(e entry) (ir.Type, bool, error) {
	var block Lines
	switch {
	case e.complex:
		cl, ok := r.valueLine(e)
		if !ok {
			return 0, false, nil
		}
		if _, _, ok := blockIndicator(markerContent(cl.Trimmed())); ok {
			return ir.ScalarType, true, nil
		}
		block = r.nested(cl)
	case e.inline != "":
		return inlineKind(e.inline), true, nil
	default:
		block = r.raw.Contained(e.line.number)
	}
	sub, err := newView(block, r.opts)
	if err != nil {
		return 0, false, err
	}
	return sub.kind(), true, nil
}

// resolve reads the value of e, or returns nil when it is absent.
func (r *readMapping) resolve(e entry) (*ir.Node, error) {
	if !e.complex {
		return r.entryValue(e.line, e.inline)
	}
	cl, ok := r.valueLine(e)
	if !ok {
		return nil, nil
	}
	if s, c, ok := blockIndicator(markerContent(cl.Trimmed())); ok {
		return readBlock(r.raw.Contained(cl.number), s, c), nil
	}
	return r.toNode(r.nested(cl))
}

// typed returns the value under key if it has type t.
func (r *readMapping) typed(key *ir.Node, t ir.Type) (*ir.Node, error) {
	e, ok, err := r.find(key)
	if err != nil || !ok {
		return nil, err
	}
	k, ok, err := r.kind(e)
	if err != nil || !ok || k != t {
		return nil, err
	}
	r.logf("%s under key %v at line %d\n", t, key, e.line.number)
	n, err := r.resolve(e)
	if err != nil || n == nil || n.Type != t {
		return nil, err
	}
	return n, nil
}

func (r *readMapping) mapping(key *ir.Node) (*ir.Node, error) {
	return r.typed(key, ir.MappingType)
}

func (r *readMapping) sequence(key *ir.Node) (*ir.Node, error) {
	return r.typed(key, ir.SequenceType)
}

func (r *readMapping) scalar(key *ir.Node) (*ir.Node, error) {
	return r.typed(key, ir.ScalarType)
}

// value tries a Mapping, then a Sequence, then a Scalar.
func (r *readMapping) value(key *ir.Node) (*ir.Node, error) {
	for _, get := range []func(*ir.Node) (*ir.Node, error){r.mapping, r.sequence, r.scalar} {
		n, err := get(key)
		if err != nil || n != nil {
			return n, err
		}
	}
	return nil, nil
}

// children returns the values in key order.  An absent value is nil.
func (r *readMapping) children() ([]*ir.Node, error) {
	keys, err := r.keys()
	if err != nil {
		return nil, err
	}
	res := make([]*ir.Node, len(keys))
	for i, k := range keys {
		v, err := r.value(k)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// node materializes the mapping.  A complex key without a value gets the
// empty Scalar.
func (r *readMapping) node() (*ir.Node, error) {
	es, err := r.entries()
	if err != nil {
		return nil, err
	}
	if r.opts.rejectDups {
		if err := checkDuplicates(es); err != nil {
			return nil, err
		}
	}
	keys := distinctKeys(es)
	kvs := make([]ir.KeyVal, len(keys))
	for i, k := range keys {
		v, err := r.value(k)
		if err != nil {
			return nil, err
		}
		if v == nil {
			v = ir.FromString("")
		}
		kvs[i] = ir.KeyVal{Key: k, Val: v}
	}
	return ir.FromKeyVals(kvs), nil
}
