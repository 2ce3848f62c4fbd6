// Package similarity converts raw overlap statistics between two entities
// into similarity scores, decoupled from how those statistics were collected
// or where the resulting scores are stored.
package similarity

import (
	"github.com/chewxy/math32"
)

// Binary computes a similarity score from binary co-occurrence statistics:
// the number of observations shared by two entities and the marginal counts
// of each. Implementations are pure and hold no state.
type Binary interface {
	// IsSymmetric reports whether scores are invariant under swapping the
	// entity pair. A correlation matrix builder only needs to fill one
	// triangle for a symmetric strategy.
	IsSymmetric() bool
	// FromOverlap computes the score from the shared observation count and
	// the marginal counts of both entities.
	FromOverlap(overlap, countX, countY float32) float32
}

// Jaccard is the Jaccard (Tanimoto) coefficient |X∩Y| / |X∪Y|.
type Jaccard struct{}

func (Jaccard) IsSymmetric() bool {
	return true
}

func (Jaccard) FromOverlap(overlap, countX, countY float32) float32 {
	// Zero overlap means no shared evidence. The branch also keeps the
	// countX == countY == 0 case well-defined.
	if overlap == 0 {
		return 0
	}
	return overlap / (countX + countY - overlap)
}

// Cosine is the binary cosine similarity |X∩Y| / sqrt(|X|·|Y|).
type Cosine struct{}

func (Cosine) IsSymmetric() bool {
	return true
}

func (Cosine) FromOverlap(overlap, countX, countY float32) float32 {
	if overlap == 0 {
		return 0
	}
	return overlap / math32.Sqrt(countX*countY)
}

// Cooccurrence scores a pair by its raw overlap count.
type Cooccurrence struct{}

func (Cooccurrence) IsSymmetric() bool {
	return true
}

func (Cooccurrence) FromOverlap(overlap, _, _ float32) float32 {
	return overlap
}

// ConditionalProbability is the asymmetric score P(Y|X) = |X∩Y| / |X|.
type ConditionalProbability struct{}

func (ConditionalProbability) IsSymmetric() bool {
	return false
}

func (ConditionalProbability) FromOverlap(overlap, countX, _ float32) float32 {
	if overlap == 0 {
		return 0
	}
	return overlap / countX
}
