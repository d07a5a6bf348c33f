package trial

import (
	"fmt"
	"math/rand"

	"bross/internal/errors"
)

// Pair holds one patient-couple's binary responses to treatment A and treatment B.
// Immutable once observed.
type Pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Informative reports whether the pair carries directional information (a != b).
// Ties contribute nothing to the sequential walk and are discarded before it starts.
func (p Pair) Informative() bool {
	return p.A != p.B
}

// PairSequence is an ordered sequence of pairs. Order matters: it is the object
// under study in the order-robustness evaluation.
type PairSequence []Pair

// Validate checks that every pair holds binary values
func Validate(pairs PairSequence) error {
	if len(pairs) == 0 {
		return errors.InvalidInput("pair sequence is empty")
	}
	for i, p := range pairs {
		if !binary(p.A) || !binary(p.B) {
			return errors.InvalidInput(
				fmt.Sprintf("pair %d: values must be 0 or 1, got (%d,%d)", i, p.A, p.B))
		}
	}
	return nil
}

// FilterInformative returns the informative pairs in their original relative
// order. The input is never modified.
func FilterInformative(pairs PairSequence) PairSequence {
	out := make(PairSequence, 0, len(pairs))
	for _, p := range pairs {
		if p.Informative() {
			out = append(out, p)
		}
	}
	return out
}

// CountInformative returns the number of informative pairs in the sequence
func CountInformative(pairs PairSequence) int {
	n := 0
	for _, p := range pairs {
		if p.Informative() {
			n++
		}
	}
	return n
}

// Shuffled returns a uniformly random permutation of the sequence drawn from
// the supplied generator. The receiver is never mutated.
func (s PairSequence) Shuffled(rng *rand.Rand) PairSequence {
	out := make(PairSequence, len(s))
	copy(out, s)

	// Fisher-Yates shuffle
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func binary(v int) bool {
	return v == 0 || v == 1
}
