package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/wordlestrat/internal/dependencies/clock"
	"github.com/mcoot/wordlestrat/internal/dependencies/random"
	"github.com/mcoot/wordlestrat/internal/services/frequency"
	"github.com/mcoot/wordlestrat/internal/services/histogram"
	"github.com/mcoot/wordlestrat/internal/services/runs"
	"github.com/mcoot/wordlestrat/internal/services/scoring"
	"github.com/mcoot/wordlestrat/internal/services/simulation"
	"github.com/mcoot/wordlestrat/internal/services/wordlist"
	"github.com/mcoot/wordlestrat/internal/storage"
	"github.com/mcoot/wordlestrat/internal/storage/memory"
	redisstorage "github.com/mcoot/wordlestrat/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordListService   *wordlist.Service
	FrequencyService  *frequency.Service
	ScoringService    *scoring.Service
	SimulationService *simulation.Service
	HistogramService  *histogram.Service
	RunsController    *runs.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Selection picks the top-five letter selection mode (optional, defaults to ranked)
	Selection frequency.Selection
	// Histogram holds chart rendering settings (optional)
	// If zero value, defaults to histogram.DefaultConfig()
	Histogram histogram.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	histCfg := cfg.Histogram
	if histCfg.Width == 0 {
		histCfg = histogram.DefaultConfig()
	}

	return newWithDependencies(store, clock.New(), random.New(), cfg.Selection, histCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	selection frequency.Selection,
	histCfg histogram.Config,
	logger *slog.Logger,
) *App {
	wordListService := wordlist.New(store, logger)
	frequencyService := frequency.New(selection)
	scoringService := scoring.New()
	simulationService := simulation.New(scoringService, rnd, logger)
	histogramService := histogram.New(histCfg)
	runsController := runs.NewController(store, wordListService, scoringService, simulationService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		WordListService:   wordListService,
		FrequencyService:  frequencyService,
		ScoringService:    scoringService,
		SimulationService: simulationService,
		HistogramService:  histogramService,
		RunsController:    runsController,
	}
}

// LoadWords loads the word list from path, or from storage when path is empty
func (a *App) LoadWords(ctx context.Context, path string) error {
	if path == "" {
		return a.WordListService.LoadFromStorage(ctx)
	}
	return a.WordListService.LoadFromFile(ctx, path)
}

// Close releases storage connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
