package array

import "go.ytsaurus.tech/library/go/array/internal/hashset"

// Uniq removes all but the first occurrence of each value from s, keeping
// the survivors in their original order.
// It will alter original non-empty slice, consider copy it beforehand.
func Uniq[S ~[]T, T comparable](s S) S {
	return uniqSet(s, hashset.New[T](len(s)))
}

// UniqFast is Uniq with a cheaper hash backend. Output is identical to Uniq
// for any input; prefer Uniq when element values may be adversarially chosen.
func UniqFast[S ~[]T, T comparable](s S) S {
	return uniqSet(s, hashset.NewFast[T](len(s)))
}

func uniqSet[S ~[]T, T comparable](s S, seen hashset.Set[T]) S {
	if len(s) < 2 {
		return s
	}
	var p int
	for _, v := range s {
		if seen.Add(v) {
			s[p] = v
			p++
		}
	}
	return s[:p]
}
