package ir

import (
	"fmt"

	"github.com/yamltree/yamltree/ir/kpath"
)

// GetKPath navigates from y along a path such as "a.b[0]".  A step that
// finds nothing yields a *NotFoundError naming it.  Wildcards are not
// allowed; use ListKPath.
func (y *Node) GetKPath(kp string) (*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	res, err := y.getKPath(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kp, err)
	}
	return res, nil
}

func (y *Node) getKPath(kp *kpath.KPath) (*Node, error) {
	res := y
	for ; kp != nil; kp = kp.Next {
		var err error
		switch {
		case kp.FieldAll:
			return nil, fmt.Errorf("%w: any field .* in get", kpath.ErrBadPath)
		case kp.IndexAll:
			return nil, fmt.Errorf("%w: any index [*] in get", kpath.ErrBadPath)
		case kp.Index != nil:
			res, err = Strict(res).Index(*kp.Index)
		case kp.Field != nil:
			res, err = Strict(res).Value(Key(*kp.Field))
		}
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// ListKPath appends to dst every node reached by the path kp, which may
// contain wildcards.  Steps that find nothing contribute nothing.
func (y *Node) ListKPath(dst []*Node, kp string) ([]*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return y.listKPath(dst, p), nil
}

func (y *Node) listKPath(dst []*Node, kp *kpath.KPath) []*Node {
	if kp == nil {
		return append(dst, y)
	}
	switch y.Type {
	case MappingType:
		if kp.FieldAll {
			for _, v := range y.Values {
				dst = v.listKPath(dst, kp.Next)
			}
			return dst
		}
		if kp.Field != nil {
			if v := y.Value(Key(*kp.Field)); v != nil {
				dst = v.listKPath(dst, kp.Next)
			}
		}
		return dst
	case SequenceType:
		if kp.IndexAll {
			for _, v := range y.Values {
				dst = v.listKPath(dst, kp.Next)
			}
			return dst
		}
		if kp.Index != nil {
			if v := y.Index(*kp.Index); v != nil {
				dst = v.listKPath(dst, kp.Next)
			}
		}
		return dst
	}
	return dst
}
