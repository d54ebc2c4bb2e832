package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordlestrat/internal/api/apierr"
	"github.com/mcoot/wordlestrat/internal/api/handler"
	"github.com/mcoot/wordlestrat/internal/api/middleware"
	"github.com/mcoot/wordlestrat/internal/services/frequency"
	"github.com/mcoot/wordlestrat/internal/services/histogram"
	"github.com/mcoot/wordlestrat/internal/services/runs"
	"github.com/mcoot/wordlestrat/internal/services/scoring"
	"github.com/mcoot/wordlestrat/internal/services/wordlist"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	WordListService  *wordlist.Service
	FrequencyService *frequency.Service
	ScoringService   scoring.ServiceInterface
	RunsController   *runs.Controller
	HistogramService *histogram.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)

	wordsHandler := handler.NewWordsHandler(cfg.WordListService, cfg.FrequencyService, cfg.ScoringService)
	runsHandler := handler.NewRunsHandler(cfg.RunsController, cfg.HistogramService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", wordsHandler.Health).Methods(http.MethodGet)

	// Word list analysis
	api.HandleFunc("/words", wordsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/letters", wordsHandler.Letters).Methods(http.MethodGet)
	api.HandleFunc("/score", wordsHandler.Score).Methods(http.MethodGet)

	// Simulation runs
	api.HandleFunc("/runs", runsHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/runs", runsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/runs/{id}", runsHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/runs/{id}/histogram", runsHandler.Histogram).Methods(http.MethodGet)

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
