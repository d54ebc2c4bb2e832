package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	words []string
	runs  map[model.RunID]*model.Run
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		runs: make(map[model.RunID]*model.Run),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Word list operations

func (s *Storage) GetWordList(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.words == nil {
		return nil, model.ErrWordListNotLoaded
	}
	result := make([]string, len(s.words))
	copy(result, s.words)
	return result, nil
}

func (s *Storage) SaveWordList(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = make([]string, len(words))
	copy(s.words, words)
	return nil
}

// Run operations

func (s *Storage) SaveRun(ctx context.Context, run *model.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

func (s *Storage) GetRun(ctx context.Context, id model.RunID) (*model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, model.ErrRunNotFound
	}
	return run, nil
}

func (s *Storage) ListRuns(ctx context.Context) ([]*model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := make([]*model.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].ID > runs[j].ID
		}
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}
