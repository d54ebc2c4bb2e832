package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/wordlestrat/internal/dependencies/random"
	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/services/scoring"
)

// Params controls a batch of trials
type Params struct {
	// FixedGuess is strategy A's constant guess
	FixedGuess string
	// ExperimentCount is the number of random targets scored per trial
	ExperimentCount int
	// TrialCount is the number of experiments to run
	TrialCount int
	// Parallelism is the number of trials run at once; <= 1 runs them in order
	Parallelism int
}

// ParamsFromRun extracts simulation parameters from run parameters
func ParamsFromRun(p model.RunParams) Params {
	return Params{
		FixedGuess:      p.FixedGuess,
		ExperimentCount: p.ExperimentCount,
		TrialCount:      p.TrialCount,
		Parallelism:     p.Parallelism,
	}
}

// ProgressFunc is called after each completed trial
type ProgressFunc func(done, total int)

// Service runs Monte Carlo comparisons of a fixed guess against a random guess
type Service struct {
	scorer    scoring.ServiceInterface
	random    random.Random
	newRandom func(seed uint64) random.Random
	logger    *slog.Logger
}

// New creates a simulation Service drawing from rnd
func New(scorer scoring.ServiceInterface, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		scorer: scorer,
		random: rnd,
		newRandom: func(seed uint64) random.Random {
			return random.NewSeeded(seed)
		},
		logger: logger,
	}
}

// RunExperiment picks strategy B's guess once from words, then draws
// experimentCount targets with replacement and scores both guesses against each.
// The first draw from the random source is always guess B.
func (s *Service) RunExperiment(words []string, guessA string, experimentCount int) (*model.ExperimentResult, error) {
	if err := validate(words, guessA, experimentCount); err != nil {
		return nil, err
	}
	return s.runExperiment(s.random, words, guessA, experimentCount)
}

func (s *Service) runExperiment(rnd random.Random, words []string, guessA string, experimentCount int) (*model.ExperimentResult, error) {
	guessB := words[rnd.Intn(len(words))]

	result := &model.ExperimentResult{
		GuessA:  guessA,
		GuessB:  guessB,
		ScoresA: make([]int, 0, experimentCount),
		ScoresB: make([]int, 0, experimentCount),
	}

	for i := 0; i < experimentCount; i++ {
		target := words[rnd.Intn(len(words))]

		scoreA, err := s.scorer.CountExactMatches(target, guessA)
		if err != nil {
			return nil, err
		}
		scoreB, err := s.scorer.CountExactMatches(target, guessB)
		if err != nil {
			return nil, err
		}

		result.ScoresA = append(result.ScoresA, scoreA)
		result.ScoresB = append(result.ScoresB, scoreB)
	}

	return result, nil
}

// RunTrials runs params.TrialCount experiments and records the mean score of each
// strategy per experiment. A fresh guess B and fresh targets are drawn every trial.
func (s *Service) RunTrials(ctx context.Context, words []string, params Params, progress ProgressFunc) (*model.TrialSummary, error) {
	if params.TrialCount <= 0 {
		return nil, fmt.Errorf("%w: trial count must be positive, got %d", model.ErrInvalidInput, params.TrialCount)
	}
	if err := validate(words, params.FixedGuess, params.ExperimentCount); err != nil {
		return nil, err
	}

	start := time.Now()
	s.logger.Info("running trials",
		slog.String("fixed_guess", params.FixedGuess),
		slog.Int("trials", params.TrialCount),
		slog.Int("experiments", params.ExperimentCount),
		slog.Int("parallelism", params.Parallelism),
		slog.Int("words", len(words)),
	)

	summary := &model.TrialSummary{
		AveragesA: make([]float64, params.TrialCount),
		AveragesB: make([]float64, params.TrialCount),
		GuessesB:  make([]string, params.TrialCount),
	}

	var err error
	if params.Parallelism > 1 {
		err = s.runParallel(ctx, words, params, summary, progress)
	} else {
		err = s.runSequential(ctx, words, params, summary, progress)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("trials complete",
		slog.Int("trials", params.TrialCount),
		slog.Duration("duration", time.Since(start)),
	)
	return summary, nil
}

func (s *Service) runSequential(ctx context.Context, words []string, params Params, summary *model.TrialSummary, progress ProgressFunc) error {
	for i := 0; i < params.TrialCount; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := s.runExperiment(s.random, words, params.FixedGuess, params.ExperimentCount)
		if err != nil {
			return err
		}
		record(summary, i, result)

		if progress != nil {
			progress(i+1, params.TrialCount)
		}
	}
	return nil
}

// runParallel gives every trial its own generator, seeded from the shared source
// before any goroutine starts, so results depend only on that source.
func (s *Service) runParallel(ctx context.Context, words []string, params Params, summary *model.TrialSummary, progress ProgressFunc) error {
	seeds := make([]uint64, params.TrialCount)
	for i := range seeds {
		seeds[i] = uint64(s.random.Intn(math.MaxInt))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(params.Parallelism)

	var mu sync.Mutex
	done := 0

	for i := 0; i < params.TrialCount; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := s.runExperiment(s.newRandom(seeds[i]), words, params.FixedGuess, params.ExperimentCount)
			if err != nil {
				return err
			}

			// Each trial owns index i; the mutex only guards the progress counter
			record(summary, i, result)

			if progress != nil {
				mu.Lock()
				done++
				progress(done, params.TrialCount)
				mu.Unlock()
			}
			return nil
		})
	}

	return g.Wait()
}

func record(summary *model.TrialSummary, i int, result *model.ExperimentResult) {
	summary.AveragesA[i] = mean(result.ScoresA)
	summary.AveragesB[i] = mean(result.ScoresB)
	summary.GuessesB[i] = result.GuessB
}

func validate(words []string, guessA string, experimentCount int) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: word list is empty", model.ErrInvalidInput)
	}
	if experimentCount <= 0 {
		return fmt.Errorf("%w: experiment count must be positive, got %d", model.ErrInvalidInput, experimentCount)
	}
	for _, w := range words {
		if len(w) != len(guessA) {
			return fmt.Errorf("%w: word %q and guess %q differ in length", model.ErrInvalidInput, w, guessA)
		}
	}
	return nil
}

func mean(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, v := range scores {
		sum += v
	}
	return float64(sum) / float64(len(scores))
}

// Interface for dependency injection
type ServiceInterface interface {
	RunExperiment(words []string, guessA string, experimentCount int) (*model.ExperimentResult, error)
	RunTrials(ctx context.Context, words []string, params Params, progress ProgressFunc) (*model.TrialSummary, error)
}

var _ ServiceInterface = (*Service)(nil)
