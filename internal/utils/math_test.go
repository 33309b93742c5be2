package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureIntn_Range(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := SecureIntn(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "every value in range should appear")
}

func TestSecureIntn_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { SecureIntn(0) })
	assert.Panics(t, func() { SecureIntn(-3) })
}
