package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicNonZeroID(t *testing.T) {
	gen, err := MonotonicNonZeroID()
	assert.Nil(t, err)
	prev := uint64(0)
	for i := 0; i < 1000; i++ {
		num := gen.Number()
		assert.Greater(t, num, prev)
		assert.NotZero(t, num)
		prev = num
	}
	assert.NotEmpty(t, gen.Str())
}
