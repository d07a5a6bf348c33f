package rng

import (
	"context"
	"hash/fnv"
	"math/rand"
)

// SeededRNG hands out deterministic math/rand streams keyed by operation name
// and seed. The same (name, seed) tuple always yields an identical stream;
// distinct tuples yield independent streams, which is what lets concurrent
// Monte Carlo workers shuffle without sharing generator state.
type SeededRNG struct{}

// NewSeededRNG creates the default RNG adapter
func NewSeededRNG() SeededRNG {
	return SeededRNG{}
}

// SeededStream implements ports.RNGPort
func (SeededRNG) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	h := fnv.New64a()
	h.Write([]byte(name))
	mixed := int64(h.Sum64()) ^ seed
	return rand.New(rand.NewSource(mixed)), nil
}
