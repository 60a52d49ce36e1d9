package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeysSorted(t *testing.T) {
	assert := assert.New(t)
	m := map[string]int{"c/5": 1, "a/4": 2, "b/4": 3}
	assert.Equal([]string{"a/4", "b/4", "c/5"}, GetKeys(m))
	assert.Empty(GetKeys(map[int]int{}))
}

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Min(3, 9))
	assert.Equal(3, Min(9, 3))
	assert.Equal(-2, Min(-2, 0))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5, Clamp(5, 0, 10))
	assert.Equal(0, Clamp(-3, 0, 10))
	assert.Equal(10, Clamp(42, 0, 10))
	assert.Equal(2.5, Clamp(2.5, 1.0, 4.0))
}
