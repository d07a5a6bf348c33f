package ports

// ProgressPort surfaces Monte Carlo progress to an interested caller.
// The evaluation behaves identically whether or not progress is observed.
type ProgressPort interface {
	// Step reports that `completed` of `total` iterations have finished
	Step(completed, total int)
}

// NopProgress discards progress events
type NopProgress struct{}

func (NopProgress) Step(completed, total int) {}
