package vectorize

import (
	"hash/fnv"

	"github.com/unimarket/semantic-search/internal/domain"
)

const (
	// DefaultDim is the embedding dimension used when none is configured.
	DefaultDim = 384

	unigramWeight = 1.0
	bigramWeight  = 0.5
)

// FeatureHasher maps token sequences into a fixed-dimension vector via the
// hashing trick. It uses FNV-1a 64-bit, a stable, non-randomized content
// hash: identical text always produces bit-identical vectors across
// processes, which keeps re-embedding idempotent. The low bits of the hash
// select the bucket and bit 63 selects the sign, the standard unbiasing of
// the hashing trick.
type FeatureHasher struct {
	dim int
}

// NewFeatureHasher creates a hasher with the given dimension.
func NewFeatureHasher(dim int) FeatureHasher {
	if dim <= 0 {
		dim = DefaultDim
	}
	return FeatureHasher{dim: dim}
}

// Dim returns the output vector dimension.
func (h FeatureHasher) Dim() int {
	return h.dim
}

// Vectorize accumulates signed unigram and bigram features into a bucket
// vector and L2-normalizes it. An empty token list yields the zero vector.
func (h FeatureHasher) Vectorize(tokens []string) domain.Vector {
	vec := make(domain.Vector, h.dim)
	if len(tokens) == 0 {
		return vec
	}

	for _, token := range tokens {
		h.add(vec, token, unigramWeight)
	}
	// Bigrams contribute local-context signal at reduced weight.
	for i := 0; i+1 < len(tokens); i++ {
		h.add(vec, tokens[i]+" "+tokens[i+1], bigramWeight)
	}

	return vec.Normalized()
}

func (h FeatureHasher) add(vec domain.Vector, feature string, weight float64) {
	hasher := fnv.New64a()
	hasher.Write([]byte(feature)) //nolint:errcheck
	sum := hasher.Sum64()

	bucket := sum % uint64(h.dim)
	if (sum>>63)&1 == 1 {
		weight = -weight
	}
	vec[bucket] += weight
}
