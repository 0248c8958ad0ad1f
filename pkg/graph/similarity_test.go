package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	t.Run("identical vectors score 1", func(t *testing.T) {
		v := []float32{0.5, 0.5, 0.1}
		assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	})

	t.Run("opposite vectors score -1", func(t *testing.T) {
		assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	})

	t.Run("dimension mismatch scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Cosine([]float32{1, 0}, []float32{1, 0, 0}))
	})

	t.Run("zero vector scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 0}))
	})

	t.Run("empty vectors score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Cosine(nil, nil))
	})
}
