package array

import "go.ytsaurus.tech/library/go/core/xerrors"

// ErrChunkSize is returned by Chunk when the requested chunk size is not
// positive.
var ErrChunkSize = xerrors.NewSentinel("chunk size must be positive")

// Chunk splits s into consecutive groups of at most size elements each.
// Every group except possibly the last has exactly size elements. Groups are
// copies and share no memory with s. An empty s yields an empty group list.
func Chunk[S ~[]T, T any](s S, size int) ([]S, error) {
	if size <= 0 {
		return nil, ErrChunkSize
	}
	chunks := make([]S, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunk := make(S, end-start)
		copy(chunk, s[start:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}
