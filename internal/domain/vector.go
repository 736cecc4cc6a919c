package domain

import "math"

// Vector is a fixed-length embedding. A valid Vector is either all-zero
// (no signal) or L2-normalized.
type Vector []float64

// Dim returns the vector dimension.
func (v Vector) Dim() int {
	return len(v)
}

// IsZero reports whether the vector carries no signal.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalized returns an L2-normalized copy of the vector. A zero vector is
// returned unchanged.
func (v Vector) Normalized() Vector {
	norm := v.Norm()
	if norm == 0 {
		return v
	}
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

// Centroid computes the L2-renormalized component-wise mean of the given
// vectors. It returns nil when the input is empty or the vectors disagree
// on dimension.
func Centroid(vectors []Vector) Vector {
	if len(vectors) == 0 {
		return nil
	}
	dim := vectors[0].Dim()
	mean := make(Vector, dim)
	for _, vec := range vectors {
		if vec.Dim() != dim {
			return nil
		}
		for i, x := range vec {
			mean[i] += x
		}
	}
	for i := range mean {
		mean[i] /= float64(len(vectors))
	}
	return mean.Normalized()
}
