// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/grimoire/pkg/slice"
)

/*
TestFilter_NewSlice verifies the input is untouched and the result is a copy.
*/
func TestFilter_NewSlice(t *testing.T) {
	input := []int{3, 1, 2}
	evens := slice.Filter(input, func(v int) bool { return v%2 == 0 })

	assert.Equal(t, []int{2}, evens)
	assert.Equal(t, []int{3, 1, 2}, input)

	all := slice.Filter(input, func(int) bool { return true })
	all[0] = 99
	assert.Equal(t, 3, input[0])
}

/*
TestFilter_EmptyNotNil checks empty results stay non-nil for JSON encoding.
*/
func TestFilter_EmptyNotNil(t *testing.T) {
	assert.NotNil(t, slice.Filter([]int(nil), func(int) bool { return true }))
	assert.NotNil(t, slice.Filter([]int{1}, func(int) bool { return false }))
	assert.NotNil(t, slice.Map([]int(nil), func(v int) int { return v }))
}

/*
TestMap_Transform applies the transform in order.
*/
func TestMap_Transform(t *testing.T) {
	got := slice.Map([]int{1, 2, 3}, func(v int) string { return string(rune('a' + v - 1)) })
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
