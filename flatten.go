package array

// Flatten concatenates the inner slices of s into one flat slice, preserving
// outer-major, inner-minor order. The result shares no memory with s.
func Flatten[S ~[]E, E ~[]T, T any](s S) []T {
	return FlattenFunc(s, func(e E) []T { return []T(e) })
}

// FlattenFunc flattens a sequence of arbitrary sequence-like values. view
// projects each outer element to a read-only flat view of its elements; it
// is called once per outer element.
func FlattenFunc[S ~[]E, E, T any](s S, view func(E) []T) []T {
	views := make([][]T, len(s))
	var total int
	for i, e := range s {
		views[i] = view(e)
		total += len(views[i])
	}
	flat := make([]T, 0, total)
	for _, v := range views {
		flat = append(flat, v...)
	}
	return flat
}
