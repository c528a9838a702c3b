package array

// DropStart removes the first n elements of s, shifting the survivors
// forward. Dropping more elements than s holds empties it; n <= 0 is a no-op.
// It will alter original non-empty slice, consider copy it beforehand.
func DropStart[S ~[]T, T any](s S, n int) S {
	if n <= 0 {
		return s
	}
	if n >= len(s) {
		return s[:0]
	}
	return s[:copy(s, s[n:])]
}

// DropEnd removes the last n elements of s. Dropping more elements than s
// holds empties it; n <= 0 is a no-op.
// It will alter original non-empty slice, consider copy it beforehand.
func DropEnd[S ~[]T, T any](s S, n int) S {
	if n <= 0 {
		return s
	}
	if n >= len(s) {
		return s[:0]
	}
	return s[:len(s)-n]
}
