package common

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]string(nil)))
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]int{0}))
}

func TestMap(t *testing.T) {
	assert.Nil(t, Map([]int(nil), strconv.Itoa))
	assert.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
}
