package array_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.ytsaurus.tech/library/go/array"
)

func isEven(n int) bool { return n%2 == 0 }

func TestFindIndex(t *testing.T) {
	assert.Equal(t, 1, array.FindIndex([]int{5, 8, 12, 7}, isEven))
	assert.Equal(t, 0, array.FindIndex([]int{2, 4}, isEven))
	assert.Equal(t, -1, array.FindIndex([]int{1, 3, 5}, isEven))
	assert.Equal(t, -1, array.FindIndex([]int{}, isEven))

	withPrefix := func(s string) bool { return strings.HasPrefix(s, "b") }
	assert.Equal(t, 1, array.FindIndex([]string{"apple", "banana", "blueberry"}, withPrefix))
}

func TestFindIndexes(t *testing.T) {
	assert.Equal(t, []int{1, 2}, array.FindIndexes([]int{5, 8, 12, 7}, isEven))
	assert.Equal(t, []int{0, 1, 2}, array.FindIndexes([]int{2, 4, 6}, isEven))
	assert.Equal(t, []int{}, array.FindIndexes([]int{1, 3}, isEven))
	assert.Equal(t, []int{}, array.FindIndexes([]int{}, isEven))
}

func TestFindLastIndex(t *testing.T) {
	assert.Equal(t, 2, array.FindLastIndex([]int{5, 8, 12, 7}, isEven))
	assert.Equal(t, 0, array.FindLastIndex([]int{2, 1, 3}, isEven))
	assert.Equal(t, -1, array.FindLastIndex([]int{1, 3, 5}, isEven))
	assert.Equal(t, -1, array.FindLastIndex([]int{}, isEven))
}
