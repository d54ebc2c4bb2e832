package request

// CreateRunRequest is the request body for starting a simulation run.
// Zero values fall back to the classic defaults.
type CreateRunRequest struct {
	FixedGuess      string  `json:"fixed_guess,omitempty"`
	ExperimentCount int     `json:"experiment_count,omitempty"`
	TrialCount      int     `json:"trial_count,omitempty"`
	Seed            *uint64 `json:"seed,omitempty"`
	Parallelism     int     `json:"parallelism,omitempty"`
}
