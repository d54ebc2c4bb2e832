package scoring

import (
	"fmt"

	"github.com/mcoot/wordlestrat/internal/model"
)

// Service scores a guess against a target word
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// CountExactMatches returns the number of positions where guess and target hold the
// same letter. The result is symmetric in its arguments.
func (s *Service) CountExactMatches(target, guess string) (int, error) {
	if len(target) != len(guess) {
		return 0, fmt.Errorf("%w: cannot compare %q (%d letters) with %q (%d letters)",
			model.ErrInvalidInput, target, len(target), guess, len(guess))
	}

	matches := 0
	for i := 0; i < len(target); i++ {
		if guess[i] == target[i] {
			matches++
		}
	}
	return matches, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CountExactMatches(target, guess string) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
