package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic operations
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named
	// operation. Streams for distinct (name, seed) tuples are independent, so
	// concurrent permutation workers never share generator state.
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)
}
