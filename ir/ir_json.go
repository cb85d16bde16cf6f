package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FromAny converts decoded JSON or YAML data into a Node.  Every scalar
// becomes a Scalar holding its textual form; nil becomes "null".  Maps
// with non-string keys are accepted and produce complex keys.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return FromString("null"), nil
	case *Node:
		return x, nil
	case string:
		return FromString(x), nil
	case bool:
		return FromString(strconv.FormatBool(x)), nil
	case int:
		return FromString(strconv.Itoa(x)), nil
	case int64:
		return FromString(strconv.FormatInt(x, 10)), nil
	case uint64:
		return FromString(strconv.FormatUint(x, 10)), nil
	case float64:
		return FromString(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case json.Number:
		return FromString(x.String()), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case []string:
		vals := make([]*Node, len(x))
		for i, e := range x {
			vals[i] = FromString(e)
		}
		return FromSlice(vals), nil
	case map[string]any:
		kvs := make([]KeyVal, 0, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			kvs = append(kvs, KeyVal{Key: FromString(k), Val: n})
		}
		return FromKeyVals(kvs), nil
	case map[any]any:
		kvs := make([]KeyVal, 0, len(x))
		for k, e := range x {
			kn, err := FromAny(k)
			if err != nil {
				return nil, fmt.Errorf("key %v: %w", k, err)
			}
			vn, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("key %v: %w", k, err)
			}
			kvs = append(kvs, KeyVal{Key: kn, Val: vn})
		}
		return FromKeyVals(kvs), nil
	case fmt.Stringer:
		return FromString(x.String()), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotRepresentable, v)
	}
}

// ToAny converts y into strings, []any and map[string]any.  A Mapping
// with a non-Scalar key cannot be expressed that way and yields
// ErrNotRepresentable.
func (y *Node) ToAny() (any, error) {
	switch y.Type {
	case ScalarType:
		return y.String, nil
	case SequenceType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			a, err := v.ToAny()
			if err != nil {
				return nil, err
			}
			res[i] = a
		}
		return res, nil
	case MappingType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			if f.Type != ScalarType {
				return nil, fmt.Errorf("%w: %s key in a plain map", ErrNotRepresentable, f.Type)
			}
			a, err := y.Values[i].ToAny()
			if err != nil {
				return nil, err
			}
			res[f.String] = a
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: type %s", ErrNotRepresentable, y.Type)
}
