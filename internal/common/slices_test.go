package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty[[]int](nil))
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]int{1}))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string(nil))
	assert.False(t, ok)
}

func TestDistinct(t *testing.T) {
	d := NewDistinct(func(a, b int) bool { return a == b })

	_, single := d.Single()
	assert.False(t, single)

	d.Add(1)
	d.Add(1)
	assert.Equal(t, 1, d.Len())

	v, single := d.Single()
	require.True(t, single)
	assert.Equal(t, 1, v)

	d.Add(2)
	assert.Equal(t, []int{1, 2}, d.Items())

	_, single = d.Single()
	assert.False(t, single)
}
