package trial

import (
	"math/rand"
	"testing"

	"bross/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pairs   PairSequence
		wantErr bool
	}{
		{"valid pairs", PairSequence{{1, 0}, {0, 1}, {1, 1}, {0, 0}}, false},
		{"empty sequence", PairSequence{}, true},
		{"value above one", PairSequence{{2, 0}}, true},
		{"negative value", PairSequence{{1, -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.pairs)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr && errors.GetCode(err) != errors.CodeInvalidInput {
				t.Errorf("expected code %s, got %s", errors.CodeInvalidInput, errors.GetCode(err))
			}
		})
	}
}

func TestFilterInformative_PreservesOrder(t *testing.T) {
	pairs := PairSequence{{1, 1}, {1, 0}, {0, 0}, {0, 1}, {1, 0}, {1, 1}}
	got := FilterInformative(pairs)

	want := PairSequence{{1, 0}, {0, 1}, {1, 0}}
	if len(got) != len(want) {
		t.Fatalf("expected %d informative pairs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	// input must be untouched
	if pairs[0] != (Pair{1, 1}) || len(pairs) != 6 {
		t.Error("FilterInformative mutated its input")
	}
}

func TestCountInformative(t *testing.T) {
	pairs := PairSequence{{1, 1}, {1, 0}, {0, 0}, {0, 1}}
	if got := CountInformative(pairs); got != 2 {
		t.Fatalf("expected 2 informative pairs, got %d", got)
	}
}

func TestShuffled_IsPermutationAndLeavesOriginalAlone(t *testing.T) {
	pairs := PairSequence{{1, 0}, {0, 1}, {1, 1}, {0, 0}, {1, 0}}
	original := make(PairSequence, len(pairs))
	copy(original, pairs)

	rng := rand.New(rand.NewSource(7))
	shuffled := pairs.Shuffled(rng)

	if len(shuffled) != len(pairs) {
		t.Fatalf("expected %d pairs, got %d", len(pairs), len(shuffled))
	}
	for i := range original {
		if pairs[i] != original[i] {
			t.Fatal("Shuffled mutated the receiver")
		}
	}

	// multiset equality
	count := func(s PairSequence, p Pair) int {
		n := 0
		for _, q := range s {
			if q == p {
				n++
			}
		}
		return n
	}
	for _, p := range original {
		if count(shuffled, p) != count(original, p) {
			t.Fatalf("shuffled sequence is not a permutation of the input")
		}
	}
}

func TestShuffled_DeterministicForFixedSeed(t *testing.T) {
	pairs := PairSequence{{1, 0}, {0, 1}, {1, 1}, {0, 0}, {1, 0}, {0, 1}}

	a := pairs.Shuffled(rand.New(rand.NewSource(99)))
	b := pairs.Shuffled(rand.New(rand.NewSource(99)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different permutations")
		}
	}
}
