package handler

import (
	"net/http"
	"strconv"

	"github.com/mcoot/wordlestrat/internal/api/apierr"
	"github.com/mcoot/wordlestrat/internal/api/response"
	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/services/frequency"
	"github.com/mcoot/wordlestrat/internal/services/scoring"
	"github.com/mcoot/wordlestrat/internal/services/wordlist"
)

// DefaultWordLimit is the number of words listed when no limit is given
const DefaultWordLimit = 25

// WordsHandler handles word list, letter frequency and scoring endpoints
type WordsHandler struct {
	words     *wordlist.Service
	frequency *frequency.Service
	scorer    scoring.ServiceInterface
}

// NewWordsHandler creates a new WordsHandler
func NewWordsHandler(words *wordlist.Service, frequency *frequency.Service, scorer scoring.ServiceInterface) *WordsHandler {
	return &WordsHandler{
		words:     words,
		frequency: frequency,
		scorer:    scorer,
	}
}

// Health handles GET /api/v1/health
func (h *WordsHandler) Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok", Words: h.words.Count()})
}

// List handles GET /api/v1/words
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := DefaultWordLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	if !h.words.IsLoaded() {
		apierr.WriteError(w, model.ErrWordListNotLoaded)
		return
	}

	head := h.words.Head(limit)
	response.JSON(w, http.StatusOK, response.Words{Count: h.words.Count(), Words: head})
}

// Letters handles GET /api/v1/letters
func (h *WordsHandler) Letters(w http.ResponseWriter, r *http.Request) {
	analyzer := h.frequency
	if raw := r.URL.Query().Get("selection"); raw != "" {
		selection, err := frequency.ParseSelection(raw)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		analyzer = frequency.New(selection)
	}

	words, err := h.words.Words()
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	best, err := analyzer.BestLettersBySlot(words)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BestLettersFromModel(string(analyzer.Selection()), best))
}

// Score handles GET /api/v1/score
func (h *WordsHandler) Score(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	target := model.NormalizeWord(query.Get("target"))
	guess := model.NormalizeWord(query.Get("guess"))
	if target == "" || guess == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("target and guess are required"))
		return
	}

	score, err := h.scorer.CountExactMatches(target, guess)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Score{Target: target, Guess: guess, Score: score})
}
