package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyVector is returned when a similarity is requested for an empty vector.
	ErrEmptyVector = errors.New("vector cannot be empty")
	// ErrVectorLengthMismatch is returned when two vectors of different lengths are compared.
	ErrVectorLengthMismatch = errors.New("vectors must have the same length")
)

// CosineSimilarity calculates the cosine similarity between two vectors of the same length.
//
// A zero vector has no direction, so its similarity with anything is 0.
// The score is clamped to [-1, 1] to absorb floating point drift and is never NaN.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyVector
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrVectorLengthMismatch, len(a), len(b))
	}

	var dotProduct float64
	var normA float64
	var normB float64

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}
	if math.IsInf(normA, 0) || math.IsInf(normB, 0) || math.IsInf(dotProduct, 0) {
		return CosineSimilarity(scaleToUnitMax(a), scaleToUnitMax(b))
	}

	score := dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(score) {
		return 0, nil
	}
	return math.Max(-1, math.Min(1, score)), nil
}

// scaleToUnitMax divides v by its largest absolute component, which keeps the
// squared sums finite without changing the direction.
func scaleToUnitMax(v []float64) []float64 {
	var largest float64
	for _, x := range v {
		largest = math.Max(largest, math.Abs(x))
	}
	scaled := make([]float64, len(v))
	for i, x := range v {
		scaled[i] = x / largest
	}
	return scaled
}

// EncodeEmbedding serializes a vector as a JSON array of floats for text-oriented stores.
// A nil vector encodes to the empty string.
func EncodeEmbedding(vector []float64) (string, error) {
	if vector == nil {
		return "", nil
	}
	b, err := json.Marshal(vector)
	if err != nil {
		return "", fmt.Errorf("encode embedding: %w", err)
	}
	return string(b), nil
}

// DecodeEmbedding parses a vector previously written by EncodeEmbedding.
// Malformed input yields nil instead of an error.
func DecodeEmbedding(value string) []float64 {
	if value == "" {
		return nil
	}
	var vector []float64
	if err := json.Unmarshal([]byte(value), &vector); err != nil {
		return nil
	}
	return vector
}
