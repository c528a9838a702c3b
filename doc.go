// Package array provides generic utility functions for working with ordered
// element sequences in Go.
//
// It extends the standard library with chunking (Chunk), first-occurrence
// deduplication (Uniq), set operations (Difference, Intersection), compaction
// (Compact and friends), flattening (Flatten, FlattenFunc), fill helpers
// (Fill, FillZero), truncation (DropStart, DropEnd) and predicate search
// (FindIndex, FindIndexes, FindLastIndex).
//
// Operations backed by a membership set come in two flavors. The default
// flavor hashes with the runtime-seeded map backend and is safe on
// adversarially chosen input; the Fast twins use a cheaper hash backend and
// expect trusted input. Both flavors produce identical results.
package array
