package array

import "go.ytsaurus.tech/library/go/array/internal/hashset"

// Difference returns a copy of s without the elements present in any of
// others. It is a filter, not a dedup: surviving duplicates of s are all
// retained, in their original order. With no others it returns a plain copy.
func Difference[S ~[]T, T comparable](s S, others ...[]T) S {
	return differenceSet(s, others, hashset.New[T](totalLen(others)))
}

// DifferenceFast is Difference with a cheaper hash backend. Output is
// identical to Difference for any input.
func DifferenceFast[S ~[]T, T comparable](s S, others ...[]T) S {
	return differenceSet(s, others, hashset.NewFast[T](totalLen(others)))
}

func differenceSet[S ~[]T, T comparable](s S, others [][]T, excluded hashset.Set[T]) S {
	for _, other := range others {
		for _, v := range other {
			excluded.Add(v)
		}
	}
	res := make(S, 0, len(s))
	for _, v := range s {
		if !excluded.Has(v) {
			res = append(res, v)
		}
	}
	return res
}

func totalLen[T any](groups [][]T) int {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	return n
}
