package storage

import (
	"context"

	"github.com/mcoot/wordlestrat/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Word list operations
	GetWordList(ctx context.Context) ([]string, error)
	SaveWordList(ctx context.Context, words []string) error

	// Run operations
	SaveRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, id model.RunID) (*model.Run, error)
	// ListRuns returns all stored runs, newest first
	ListRuns(ctx context.Context) ([]*model.Run, error)
}
