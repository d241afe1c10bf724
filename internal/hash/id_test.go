package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestFingerprint(t *testing.T) {
	t.Run("single part equals ID", func(t *testing.T) {
		require.Equal(t, ID("vertex"), Fingerprint("vertex"))
	})

	t.Run("boundaries matter", func(t *testing.T) {
		require.NotEqual(t, Fingerprint("ab", "c"), Fingerprint("a", "bc"))
	})

	t.Run("order matters", func(t *testing.T) {
		require.NotEqual(t, Fingerprint("x", "y"), Fingerprint("y", "x"))
	})

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, Fingerprint("element vertex", "float x"), Fingerprint("element vertex", "float x"))
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, ID(""), Fingerprint())
	})
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkFingerprint(b *testing.B) {
	parts := []string{randString(12), randString(20), randString(8)}
	b.ResetTimer()
	for b.Loop() {
		Fingerprint(parts...)
	}
}
