package retrieval

import (
	"errors"
	"math"
)

// ErrDimensionMismatch is returned by CosineSimilarity when the two vectors
// differ in length. Store searches never surface it: stored vectors whose
// dimension differs from the query are simply excluded from ranking, which
// keeps lookups resilient to heterogeneous embedding versions.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// CosineSimilarity computes dot(a,b) / (||a|| * ||b||).
// Returns exactly 0 when either vector has zero norm (not an error).
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	normProduct := math.Sqrt(normA) * math.Sqrt(normB)
	if normProduct == 0 {
		return 0, nil
	}
	return dot / normProduct, nil
}
