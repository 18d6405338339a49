package internal

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	// Early stop.
	var got []int
	for val := range seq {
		got = append(got, val)
		if val == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, got)
}

func TestIterMap(t *testing.T) {
	assert := assert.New(t)

	seq := IterMap(slices.Values([]int{1, 20, 300}), strconv.Itoa)
	assert.Equal([]string{"1", "20", "300"}, slices.Collect(seq))
	assert.Empty(slices.Collect(IterMap(slices.Values([]int(nil)), strconv.Itoa)))
}
