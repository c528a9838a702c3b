// Package hashset implements the membership sets behind the package array
// set operations.
//
// Two interchangeable backends exist: a built-in map set with runtime-seeded
// hashing, and an open-addressing set with a cheaper hash function. They are
// observably identical through the Set interface.
package hashset

import "github.com/dolthub/maphash"

// Set is a membership set over comparable elements.
type Set[T comparable] interface {
	// Add inserts v and reports whether it was absent before the call.
	Add(v T) bool
	// Has reports whether v is present.
	Has(v T) bool
	// Len returns the number of distinct elements inserted so far.
	Len() int
}

// New returns a Set backed by a built-in map. Map hashing is seeded per
// process by the runtime, which keeps membership tests collision-resistant
// even when element values are chosen by an adversary.
func New[T comparable](capacity int) Set[T] {
	return make(mapSet[T], capacity)
}

type mapSet[T comparable] map[T]struct{}

func (s mapSet[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

func (s mapSet[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s mapSet[T]) Len() int {
	return len(s)
}

const minTableSize = 8

// NewFast returns a Set backed by an open-addressing table with linear
// probing. Inserts and lookups are cheaper than with New, at the price of
// weaker seeding; use it only on trusted input.
func NewFast[T comparable](capacity int) Set[T] {
	size := minTableSize
	// Keep load below 3/4 for the requested capacity.
	for size*3 < capacity*4 {
		size *= 2
	}
	return &fastSet[T]{
		hasher: maphash.NewHasher[T](),
		table:  make([]slot[T], size),
		mask:   uint64(size - 1),
	}
}

type fastSet[T comparable] struct {
	hasher maphash.Hasher[T]
	table  []slot[T]
	mask   uint64
	n      int
}

type slot[T comparable] struct {
	value T
	used  bool
}

func (s *fastSet[T]) Add(v T) bool {
	i := s.hasher.Hash(v) & s.mask
	for s.table[i].used {
		if s.table[i].value == v {
			return false
		}
		i = (i + 1) & s.mask
	}
	s.table[i] = slot[T]{value: v, used: true}
	s.n++
	if s.n*4 > len(s.table)*3 {
		s.grow()
	}
	return true
}

func (s *fastSet[T]) Has(v T) bool {
	i := s.hasher.Hash(v) & s.mask
	for s.table[i].used {
		if s.table[i].value == v {
			return true
		}
		i = (i + 1) & s.mask
	}
	return false
}

func (s *fastSet[T]) Len() int {
	return s.n
}

func (s *fastSet[T]) grow() {
	old := s.table
	s.table = make([]slot[T], len(old)*2)
	s.mask = uint64(len(s.table) - 1)
	for _, e := range old {
		if !e.used {
			continue
		}
		i := s.hasher.Hash(e.value) & s.mask
		for s.table[i].used {
			i = (i + 1) & s.mask
		}
		s.table[i] = e
	}
}
