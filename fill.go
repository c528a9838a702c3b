package array

// Fill returns a new slice holding size copies of v.
func Fill[T any](size int, v T) []T {
	s := make([]T, size)
	for i := range s {
		s[i] = v
	}
	return s
}

// FillZero returns a new slice holding size zero values of T.
func FillZero[T any](size int) []T {
	return make([]T, size)
}
