package interval

import (
	"cmp"
	"fmt"
	"slices"
)

// Set is an ascending sequence of pairwise non-overlapping intervals.
// [Insert] and [Merge] return sets in this form and never mutate
// their inputs
type Set[T integer] []Interval[T]

// Insert adds iv to s, coalescing every interval it overlaps, and
// returns the result as a new set.
//
// s must already be a valid Set (sorted, non-overlapping); Insert
// does not check this, callers with unordered input should use
// [Merge] instead. Fails with [ErrInvalidInterval] if iv.Start >
// iv.End
func Insert[T integer](s Set[T], iv Interval[T]) (Set[T], error) {
	if !iv.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, iv)
	}

	out := make(Set[T], 0, len(s)+1)

	i := 0
	for ; i < len(s) && s[i].End < iv.Start; i++ { // ends before iv begins
		out = append(out, s[i])
	}
	for ; i < len(s) && s[i].Start <= iv.End; i++ { // overlaps or touches iv
		iv = iv.union(s[i])
	}
	out = append(out, iv)

	return append(out, s[i:]...), nil
}

// Merge reduces an arbitrary interval sequence, in any order and with
// any overlaps, to its minimal disjoint covering set. Fails with
// [ErrInvalidInterval] if any element has Start > End
func Merge[T integer](ivs []Interval[T]) (Set[T], error) {
	for _, iv := range ivs {
		if !iv.valid() {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, iv)
		}
	}
	if len(ivs) == 0 {
		return Set[T]{}, nil
	}

	sorted := slices.Clone(ivs)
	slices.SortFunc(sorted, func(a, b Interval[T]) int {
		return cmp.Compare(a.Start, b.Start)
	})

	out := make(Set[T], 0, len(sorted))
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		if cur.Overlaps(iv) {
			cur = cur.union(iv)
			continue
		}
		out = append(out, cur)
		cur = iv
	}
	return append(out, cur), nil
}

// Gaps returns the maximal free intervals strictly between
// consecutive elements of s; neighbours with no integer in between
// produce no gap
func (s Set[T]) Gaps() []Interval[T] {
	var gaps []Interval[T]
	for i := 1; i < len(s); i++ {
		lo, hi := s[i-1].End+1, s[i].Start-1
		if lo <= hi {
			gaps = append(gaps, Interval[T]{lo, hi})
		}
	}
	return gaps
}

// Size returns the total count of integers covered by s
func (s Set[T]) Size() T {
	var n T
	for _, iv := range s {
		n += iv.Size()
	}
	return n
}
