package array

import (
	"golang.org/x/exp/maps"

	"go.ytsaurus.tech/library/go/array/internal/hashset"
)

// Intersection returns the values present in every one of groups. Duplicate
// occurrences within a single group count once, the result carries no
// duplicates, and its order is unspecified. With no groups, or with any
// empty group, the result is empty.
func Intersection[E comparable](groups ...[]E) []E {
	if len(groups) == 0 {
		return nil
	}
	count := make(map[E]int)
	for _, g := range groups {
		seen := hashset.New[E](len(g))
		for _, v := range g {
			if seen.Add(v) {
				count[v]++
			}
		}
	}
	maps.DeleteFunc(count, func(_ E, c int) bool { return c != len(groups) })
	return maps.Keys(count)
}
