package nodekey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKey_Distinct(t *testing.T) {
	seen := make(map[Key]bool, 10000)
	for i := 0; i < 10000; i++ {
		k := NewKey()
		assert.False(t, seen[k], "duplicate key %s after %d draws", k, i)
		seen[k] = true
	}
}

func TestNewKey_Shape(t *testing.T) {
	const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < 1000; i++ {
		k := string(NewKey())
		assert.NotEmpty(t, k)
		assert.LessOrEqual(t, len(k), 13, "base-36 of a 64-bit value fits 13 characters")
		for _, r := range k {
			assert.True(t, strings.ContainsRune(base36, r), "unexpected character %q in key %s", r, k)
		}
	}
}

func TestRootKey_OutsideGeneratedRange(t *testing.T) {
	// The sentinel uses a character no generated key can start with.
	assert.True(t, strings.HasPrefix(string(RootKey), "@"))
	for i := 0; i < 1000; i++ {
		assert.NotEqual(t, RootKey, NewKey())
	}
}
