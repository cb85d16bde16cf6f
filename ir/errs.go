package ir

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNodeNotFound     = errors.New("node not found")
	ErrNotRepresentable = errors.New("not representable")
)

// NotFoundError is returned by StrictNode lookups that found nothing.
// Key is set for Mapping lookups, Index for Sequence lookups.
type NotFoundError struct {
	Key   *Node
	Index int
	Want  string
}

func (e *NotFoundError) Unwrap() error {
	return ErrNodeNotFound
}

func (e *NotFoundError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("%s: no %s at index %d", ErrNodeNotFound, e.Want, e.Index)
	}
	return fmt.Sprintf("%s: no %s for key %s", ErrNodeNotFound, e.Want, describeKey(e.Key))
}

func describeKey(k *Node) string {
	if k.Type == ScalarType {
		return strconv.Quote(k.String)
	}
	return fmt.Sprintf("<%s of %d>", k.Type, k.Len())
}
