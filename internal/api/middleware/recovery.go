package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wordlestrat/internal/api/apierr"
	"github.com/mcoot/wordlestrat/internal/middleware"
)

// Recovery creates panic recovery middleware that answers with a JSON error
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}
