package utils

import (
	crand "crypto/rand"
	"math/big"
)

// SecureIntn returns a uniform integer in [0, n) using crypto/rand.
// It panics if n <= 0, like math/rand.Intn.
func SecureIntn(n int) int {
	if n <= 0 {
		panic("utils: SecureIntn called with non-positive n")
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader only fails when the OS entropy source is broken
		panic("utils: crypto/rand failure: " + err.Error())
	}
	return int(v.Int64())
}
