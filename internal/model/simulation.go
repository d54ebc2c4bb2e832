package model

import "time"

// RunID uniquely identifies a persisted simulation run
type RunID string

// ExperimentResult holds the per-target scores of one experiment.
// ScoresA[i] and ScoresB[i] were scored against the same sampled target.
type ExperimentResult struct {
	GuessA  string
	GuessB  string
	ScoresA []int
	ScoresB []int
}

// TrialSummary holds one mean score per trial for each strategy
type TrialSummary struct {
	AveragesA []float64
	AveragesB []float64

	// GuessesB is the random guess used by strategy B in each trial
	GuessesB []string
}

// SeriesStats summarizes a series of per-trial averages
type SeriesStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// RunParams are the inputs to a simulation run
type RunParams struct {
	FixedGuess      string
	ExperimentCount int
	TrialCount      int

	// Seed makes the run reproducible when non-nil
	Seed *uint64

	// Parallelism is the number of trials run concurrently (<= 1 is sequential)
	Parallelism int
}

// DefaultRunParams returns the parameters of the classic Felix vs Laney comparison
func DefaultRunParams() RunParams {
	return RunParams{
		FixedGuess:      "cores",
		ExperimentCount: 1000,
		TrialCount:      500,
		Parallelism:     1,
	}
}

// Run is a completed, persisted simulation
type Run struct {
	ID        RunID
	Params    RunParams
	WordCount int
	Summary   TrialSummary
	StatsA    SeriesStats
	StatsB    SeriesStats
	Duration  time.Duration
	CreatedAt time.Time
}
