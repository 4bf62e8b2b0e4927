package interval

import (
	"errors"
	"fmt"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

var ErrInvalidInterval = errors.New("invalid interval")

// Interval is a closed range of integers (both bounds inclusive)
type Interval[T integer] struct {
	Start T
	End   T
}

// New returns the interval [start, end],
// fails with [ErrInvalidInterval] if start > end
func New[T integer](start, end T) (Interval[T], error) {
	iv := Interval[T]{start, end}
	if !iv.valid() {
		return Interval[T]{}, fmt.Errorf("%w: %v", ErrInvalidInterval, iv)
	}
	return iv, nil
}

func (iv Interval[T]) valid() bool {
	return iv.Start <= iv.End
}

func (iv Interval[T]) Contains(n T) bool {
	return iv.Start <= n && n <= iv.End
}

// Overlaps reports whether iv and o share at least one integer.
//
// this is the single merge policy for the whole package: intervals
// that touch at an equal bound ([1,5] and [5,8]) overlap, adjacent
// ones with no integer in between ([1,5] and [6,8]) do not
func (iv Interval[T]) Overlaps(o Interval[T]) bool {
	return iv.Start <= o.End && o.Start <= iv.End
}

// Size returns the count of integers covered by iv
func (iv Interval[T]) Size() T {
	return iv.End - iv.Start + 1
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", iv.Start, iv.End)
}

func (iv Interval[T]) union(o Interval[T]) Interval[T] {
	return Interval[T]{min(iv.Start, o.Start), max(iv.End, o.End)}
}
