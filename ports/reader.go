package ports

import (
	"bross/domain/trial"
)

// PairReader loads a two-column binary outcome matrix from an external source
type PairReader interface {
	ReadPairs() (trial.PairSequence, error)
}
