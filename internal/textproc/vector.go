package textproc

import (
	"hash/fnv"
	"math"
)

// VectorDim is the dimension of the hashed trigram embedding space.
// 128 buckets keep vectors small while making accidental trigram
// collisions between unrelated words unlikely.
const VectorDim = 128

// Vector is a fixed-dimension semantic vector. The zero value represents
// "no content" and has zero norm.
type Vector [VectorDim]float64

// tokenVector embeds a lemma as an L2-normalized hashed trigram vector.
// The lemma is padded with boundary markers so that one- and two-letter
// words still produce at least one trigram.
func tokenVector(lemma string) Vector {
	var v Vector
	padded := "^" + lemma + "$"

	runes := []rune(padded)
	for i := 0; i+3 <= len(runes); i++ {
		h := fnv.New32a()
		_, _ = h.Write([]byte(string(runes[i : i+3])))
		v[h.Sum32()%VectorDim]++
	}

	return v.Normalize()
}

// Add accumulates another vector into v.
func (v *Vector) Add(o Vector) {
	for i := range v {
		v[i] += o[i]
	}
}

// Norm returns the Euclidean (L2) norm of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// IsZero reports whether the vector has no components.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Normalize returns the vector scaled to unit norm.
// The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	norm := v.Norm()
	if norm == 0 {
		return v
	}
	for i := range v {
		v[i] /= norm
	}
	return v
}

// Cosine returns the cosine similarity between two vectors.
// It returns 0 when either vector is zero. Because trigram counts are
// non-negative, the result is always in [0, 1].
func Cosine(a, b Vector) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}

	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}
