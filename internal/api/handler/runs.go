package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordlestrat/internal/api/apierr"
	"github.com/mcoot/wordlestrat/internal/api/request"
	"github.com/mcoot/wordlestrat/internal/api/response"
	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/services/histogram"
	"github.com/mcoot/wordlestrat/internal/services/runs"
)

// Default histogram bin counts for strategy A and B
const (
	DefaultBinsA = 5
	DefaultBinsB = 10
)

// RunsHandler handles simulation run endpoints
type RunsHandler struct {
	controller *runs.Controller
	histogram  *histogram.Service
}

// NewRunsHandler creates a new RunsHandler
func NewRunsHandler(controller *runs.Controller, histogram *histogram.Service) *RunsHandler {
	return &RunsHandler{
		controller: controller,
		histogram:  histogram,
	}
}

// Create handles POST /api/v1/runs
func (h *RunsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	params := model.DefaultRunParams()
	if req.FixedGuess != "" {
		params.FixedGuess = req.FixedGuess
	}
	if req.ExperimentCount != 0 {
		params.ExperimentCount = req.ExperimentCount
	}
	if req.TrialCount != 0 {
		params.TrialCount = req.TrialCount
	}
	if req.Parallelism != 0 {
		params.Parallelism = req.Parallelism
	}
	params.Seed = req.Seed

	run, err := h.controller.Start(r.Context(), params, nil)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RunFromModel(run, false))
}

// List handles GET /api/v1/runs
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.controller.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RunListFromModel(list))
}

// Get handles GET /api/v1/runs/{id}
func (h *RunsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.RunID(mux.Vars(r)["id"])

	run, err := h.controller.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RunFromModel(run, true))
}

// Histogram handles GET /api/v1/runs/{id}/histogram
func (h *RunsHandler) Histogram(w http.ResponseWriter, r *http.Request) {
	id := model.RunID(mux.Vars(r)["id"])

	binsA, err := intParam(r, "bins_a", DefaultBinsA)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	binsB, err := intParam(r, "bins_b", DefaultBinsB)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	run, err := h.controller.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := h.histogram.Render(&buf, histogram.StrategyChart(&run.Summary, binsA, binsB)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Text(w, http.StatusOK, buf.String())
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apierr.NewInvalidRequestError(name + " must be a positive integer")
	}
	return n, nil
}
