// Package ordering computes new ordered sequences for drag-and-drop moves.
//
// Every function is pure: inputs are never modified and the result depends
// only on the arguments.
package ordering

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when a source or destination index falls outside
// the valid range. Indices are never clamped.
var ErrInvalidIndex = errors.New("invalid index")

// Reorder moves the element at from to position to within the same sequence.
//
// The element is removed first and then inserted at to in the shortened
// sequence, so to is interpreted against the list after removal:
// [A B C D] with from=0, to=2 gives [B C A D].
func Reorder[T any](seq []T, from, to int) ([]T, error) {
	if err := checkSource(from, len(seq)); err != nil {
		return nil, err
	}
	if err := checkDestination(to, len(seq)-1); err != nil {
		return nil, err
	}

	item := seq[from]
	rest := remove(seq, from)
	return insert(rest, to, item), nil
}

// Transfer moves the element at from in src to position to in dst.
//
// to is interpreted against dst as it is now, since the two sequences are
// disjoint. When reparent is non-nil it is applied to the moved element so the
// caller can point it at the destination container.
func Transfer[T any](src, dst []T, from, to int, reparent func(T) T) ([]T, []T, error) {
	if err := checkSource(from, len(src)); err != nil {
		return nil, nil, err
	}
	if err := checkDestination(to, len(dst)); err != nil {
		return nil, nil, err
	}

	item := src[from]
	if reparent != nil {
		item = reparent(item)
	}
	return remove(src, from), insert(dst, to, item), nil
}

// IndexOf returns the index of the first element matching pred, or -1.
func IndexOf[T any](seq []T, pred func(T) bool) int {
	for i, v := range seq {
		if pred(v) {
			return i
		}
	}
	return -1
}

func checkSource(from, length int) error {
	if from < 0 || from >= length {
		return fmt.Errorf("%w: source index %d outside [0, %d)", ErrInvalidIndex, from, length)
	}
	return nil
}

func checkDestination(to, maxIndex int) error {
	if to < 0 || to > maxIndex {
		return fmt.Errorf("%w: destination index %d outside [0, %d]", ErrInvalidIndex, to, maxIndex)
	}
	return nil
}

// remove returns a fresh slice without the element at i.
func remove[T any](seq []T, i int) []T {
	out := make([]T, 0, len(seq))
	out = append(out, seq[:i]...)
	return append(out, seq[i+1:]...)
}

// insert returns a fresh slice with item placed at i.
func insert[T any](seq []T, i int, item T) []T {
	out := make([]T, 0, len(seq)+1)
	out = append(out, seq[:i]...)
	out = append(out, item)
	return append(out, seq[i:]...)
}
