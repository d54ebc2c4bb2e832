package response

import (
	"time"

	"github.com/mcoot/wordlestrat/internal/model"
)

// Health is the health check response
type Health struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

// Words is a slice of the loaded word list
type Words struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

// LetterCount is a letter and its count in one slot
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// BestLetters is the top letters for every slot
type BestLetters struct {
	Selection string                   `json:"selection"`
	Slots     map[string][]LetterCount `json:"slots"`
}

// BestLettersFromModel converts model.BestLetters
func BestLettersFromModel(selection string, best model.BestLetters) BestLetters {
	slots := make(map[string][]LetterCount, len(best))
	for slot, top := range best {
		counts := make([]LetterCount, len(top))
		for i, lc := range top {
			counts[i] = LetterCount{Letter: string(lc.Letter), Count: lc.Count}
		}
		slots[slot] = counts
	}
	return BestLetters{Selection: selection, Slots: slots}
}

// Score is the exact-match score of a guess against a target
type Score struct {
	Target string `json:"target"`
	Guess  string `json:"guess"`
	Score  int    `json:"score"`
}

// Stats summarizes one strategy's trial averages
type Stats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// StatsFromModel converts model.SeriesStats
func StatsFromModel(s model.SeriesStats) Stats {
	return Stats{
		Count:  s.Count,
		Mean:   s.Mean,
		StdDev: s.StdDev,
		Min:    s.Min,
		Max:    s.Max,
		Median: s.Median,
	}
}

// RunParams are the inputs a run was started with
type RunParams struct {
	FixedGuess      string  `json:"fixed_guess"`
	ExperimentCount int     `json:"experiment_count"`
	TrialCount      int     `json:"trial_count"`
	Seed            *uint64 `json:"seed,omitempty"`
	Parallelism     int     `json:"parallelism"`
}

// Run is a completed simulation run
type Run struct {
	ID         string    `json:"id"`
	Params     RunParams `json:"params"`
	WordCount  int       `json:"word_count"`
	StatsA     Stats     `json:"stats_a"`
	StatsB     Stats     `json:"stats_b"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
	Averages   *Averages `json:"averages,omitempty"`
}

// Averages holds the raw per-trial means, included only on detail views
type Averages struct {
	A        []float64 `json:"a"`
	B        []float64 `json:"b"`
	GuessesB []string  `json:"guesses_b"`
}

// RunFromModel converts a model.Run; withAverages includes the per-trial series
func RunFromModel(r *model.Run, withAverages bool) Run {
	run := Run{
		ID: string(r.ID),
		Params: RunParams{
			FixedGuess:      r.Params.FixedGuess,
			ExperimentCount: r.Params.ExperimentCount,
			TrialCount:      r.Params.TrialCount,
			Seed:            r.Params.Seed,
			Parallelism:     r.Params.Parallelism,
		},
		WordCount:  r.WordCount,
		StatsA:     StatsFromModel(r.StatsA),
		StatsB:     StatsFromModel(r.StatsB),
		DurationMS: r.Duration.Milliseconds(),
		CreatedAt:  r.CreatedAt,
	}
	if withAverages {
		run.Averages = &Averages{
			A:        r.Summary.AveragesA,
			B:        r.Summary.AveragesB,
			GuessesB: r.Summary.GuessesB,
		}
	}
	return run
}

// RunList is a list of runs, newest first
type RunList struct {
	Runs []Run `json:"runs"`
}

// RunListFromModel converts a slice of runs without their per-trial series
func RunListFromModel(runs []*model.Run) RunList {
	list := RunList{Runs: make([]Run, 0, len(runs))}
	for _, r := range runs {
		list.Runs = append(list.Runs, RunFromModel(r, false))
	}
	return list
}
