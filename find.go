package array

// FindIndex returns the index of the first element of s matched by match, or
// -1 if there is none. The scan stops at the first match.
func FindIndex[S ~[]T, T any](s S, match func(T) bool) int {
	for i, v := range s {
		if match(v) {
			return i
		}
	}
	return -1
}

// FindIndexes returns the indexes of every element of s matched by match, in
// ascending order. The result is empty, never nil, when nothing matches.
func FindIndexes[S ~[]T, T any](s S, match func(T) bool) []int {
	indexes := make([]int, 0, len(s))
	for i, v := range s {
		if match(v) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// FindLastIndex returns the index of the last element of s matched by match,
// or -1 if there is none. The whole slice is scanned.
func FindLastIndex[S ~[]T, T any](s S, match func(T) bool) int {
	last := -1
	for i, v := range s {
		if match(v) {
			last = i
		}
	}
	return last
}
