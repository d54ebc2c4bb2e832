package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/storage"
)

// Service loads and holds the word collection shared by the analyzer and simulator.
// The collection is replaced wholesale on each load and is read-only in between.
type Service struct {
	storage    storage.Storage
	logger     *slog.Logger
	wordLength int

	mu     sync.RWMutex
	words  []string
	loaded bool
}

// New creates a new word list Service for words of model.WordLength letters
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage:    storage,
		logger:     logger,
		wordLength: model.WordLength,
	}
}

// LoadFromStorage loads the word list previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetWordList(ctx)
	if err != nil {
		return err
	}
	return s.LoadWords(words)
}

// LoadFromFile loads words from a file (one word per line) and saves them to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", model.ErrMissingFile, path, err)
	}
	defer file.Close()

	words, err := s.parse(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := s.storage.SaveWordList(ctx, words); err != nil {
		return err
	}

	s.logger.Info("loaded word list",
		slog.String("path", path),
		slog.Int("count", len(words)),
	)
	return s.LoadWords(words)
}

// parse reads one word per line. Blank lines are skipped; every other line must be
// a valid word once trimmed and lowercased.
func (s *Service) parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		word := model.NormalizeWord(scanner.Text())
		if word == "" {
			continue
		}
		if err := model.ValidateWord(word, s.wordLength); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadWords directly loads a slice of words, validating each one
func (s *Service) LoadWords(words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: word list is empty", model.ErrInvalidInput)
	}

	loaded := make([]string, len(words))
	for i, word := range words {
		word = model.NormalizeWord(word)
		if err := model.ValidateWord(word, s.wordLength); err != nil {
			return err
		}
		loaded[i] = word
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = loaded
	s.loaded = true
	return nil
}

// Words returns a copy of the loaded words in load order
func (s *Service) Words() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, model.ErrWordListNotLoaded
	}
	result := make([]string, len(s.words))
	copy(result, s.words)
	return result, nil
}

// Head returns up to the first n words
func (s *Service) Head(n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.words) {
		n = len(s.words)
	}
	if n <= 0 {
		return []string{}
	}
	result := make([]string, n)
	copy(result, s.words[:n])
	return result
}

// IsLoaded returns whether a word list has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Count returns the number of loaded words, duplicates included
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Contains reports whether word is in the loaded list
func (s *Service) Contains(word string) bool {
	word = model.NormalizeWord(word)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.words {
		if w == word {
			return true
		}
	}
	return false
}

// Interface check
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
	Words() ([]string, error)
	Head(n int) []string
	IsLoaded() bool
	Count() int
	Contains(word string) bool
}

var _ ServiceInterface = (*Service)(nil)
