package array

// Compact removes zero values (numeric zero, false, empty string) from s,
// keeping the survivors in their original order.
// It will alter original non-empty slice, consider copy it beforehand.
func Compact[S ~[]T, T comparable](s S) S {
	var zero T
	return CompactFunc(s, func(v T) bool { return v == zero })
}

// CompactFunc is Compact with a caller-supplied emptiness test. Elements for
// which empty returns true are removed in place.
func CompactFunc[S ~[]T, T any](s S, empty func(T) bool) S {
	if len(s) == 0 {
		return s
	}
	var p int
	for _, v := range s {
		if !empty(v) {
			s[p] = v
			p++
		}
	}
	return s[:p]
}

// CompactSlices removes empty inner slices from s in place.
func CompactSlices[S ~[]E, E ~[]T, T any](s S) S {
	return CompactFunc(s, func(e E) bool { return len(e) == 0 })
}

// CompactPtr removes nil pointers and pointers to zero values from s in
// place. A present pointer follows the same emptiness rule its pointee
// would, so the check recurses one level through the wrapper.
func CompactPtr[S ~[]*T, T comparable](s S) S {
	var zero T
	return CompactFunc(s, func(p *T) bool { return p == nil || *p == zero })
}
