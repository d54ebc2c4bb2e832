package runs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/wordlestrat/internal/dependencies/clock"
	"github.com/mcoot/wordlestrat/internal/dependencies/random"
	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/services/scoring"
	"github.com/mcoot/wordlestrat/internal/services/simulation"
	"github.com/mcoot/wordlestrat/internal/services/wordlist"
	"github.com/mcoot/wordlestrat/internal/storage"
)

const (
	// RunIDLength is the length of generated run IDs
	RunIDLength = 8
	// RunIDAlphabet is the characters used in run IDs (avoid confusing chars)
	RunIDAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"

	// MaxParallelism caps concurrent trials for a single run
	MaxParallelism = 64
)

// Controller starts, stores and retrieves simulation runs
type Controller struct {
	storage   storage.Storage
	words     *wordlist.Service
	scorer    scoring.ServiceInterface
	simulator *simulation.Service
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
}

// NewController creates a new runs Controller
func NewController(
	storage storage.Storage,
	words *wordlist.Service,
	scorer scoring.ServiceInterface,
	simulator *simulation.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		words:     words,
		scorer:    scorer,
		simulator: simulator,
		clock:     clock,
		random:    random,
		logger:    logger,
	}
}

// Start runs a simulation over the loaded word list and persists the result.
// A run with a seed draws from its own generator and is reproducible.
func (c *Controller) Start(ctx context.Context, params model.RunParams, progress simulation.ProgressFunc) (*model.Run, error) {
	params.FixedGuess = model.NormalizeWord(params.FixedGuess)
	if err := validateParams(params); err != nil {
		return nil, err
	}

	words, err := c.words.Words()
	if err != nil {
		return nil, err
	}

	if !c.words.Contains(params.FixedGuess) {
		c.logger.Warn("fixed guess is not in the word list", slog.String("guess", params.FixedGuess))
	}

	sim := c.simulator
	if params.Seed != nil {
		sim = simulation.New(c.scorer, random.NewSeeded(*params.Seed), c.logger)
	}

	started := c.clock.Now()
	summary, err := sim.RunTrials(ctx, words, simulation.ParamsFromRun(params), progress)
	if err != nil {
		return nil, err
	}

	id, err := c.newRunID(ctx)
	if err != nil {
		return nil, err
	}

	run := &model.Run{
		ID:        id,
		Params:    params,
		WordCount: len(words),
		Summary:   *summary,
		StatsA:    simulation.Summarize(summary.AveragesA),
		StatsB:    simulation.Summarize(summary.AveragesB),
		Duration:  c.clock.Since(started),
		CreatedAt: started,
	}

	if err := c.storage.SaveRun(ctx, run); err != nil {
		return nil, err
	}

	c.logger.Info("run complete",
		slog.String("run_id", string(run.ID)),
		slog.Float64("mean_a", run.StatsA.Mean),
		slog.Float64("mean_b", run.StatsB.Mean),
		slog.Duration("duration", run.Duration),
	)
	return run, nil
}

// Get returns a stored run
func (c *Controller) Get(ctx context.Context, id model.RunID) (*model.Run, error) {
	return c.storage.GetRun(ctx, id)
}

// List returns all stored runs, newest first
func (c *Controller) List(ctx context.Context) ([]*model.Run, error) {
	return c.storage.ListRuns(ctx)
}

func (c *Controller) newRunID(ctx context.Context) (model.RunID, error) {
	for {
		id := model.RunID(c.random.String(RunIDLength, RunIDAlphabet))
		_, err := c.storage.GetRun(ctx, id)
		if errors.Is(err, model.ErrRunNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func validateParams(params model.RunParams) error {
	if err := model.ValidateWord(params.FixedGuess, model.WordLength); err != nil {
		return fmt.Errorf("%w: fixed guess: %w", model.ErrInvalidInput, err)
	}
	if params.ExperimentCount <= 0 {
		return fmt.Errorf("%w: experiment count must be positive", model.ErrInvalidInput)
	}
	if params.TrialCount <= 0 {
		return fmt.Errorf("%w: trial count must be positive", model.ErrInvalidInput)
	}
	if params.Parallelism > MaxParallelism {
		return fmt.Errorf("%w: parallelism must be at most %d", model.ErrInvalidInput, MaxParallelism)
	}
	return nil
}
