package core

import (
	"github.com/google/uuid"
)

// RunID uniquely identifies one robustness evaluation run
type RunID string

// NewRunID generates a new random run identifier
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

// String returns the string form of the run ID
func (id RunID) String() string {
	return string(id)
}

// IsZero checks whether the ID is unset
func (id RunID) IsZero() bool {
	return id == ""
}
