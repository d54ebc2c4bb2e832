package factory

import (
	"time"

	"github.com/mcoot/wordlestrat/internal/dependencies/mocks"
	"github.com/mcoot/wordlestrat/internal/services/frequency"
	"github.com/mcoot/wordlestrat/internal/services/histogram"
	"github.com/mcoot/wordlestrat/internal/storage/memory"
	"github.com/mcoot/wordlestrat/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	histCfg := histogram.DefaultConfig()
	histCfg.Color = false

	app := newWithDependencies(store, mockClock, mockRandom, frequency.SelectionRanked, histCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestWords is a small five-letter word list for testing
var TestWords = []string{
	"cores", "coals", "bears", "pears", "years",
	"about", "above", "after", "again", "among",
	"black", "board", "bound", "bring", "build",
	"carry", "cause", "child", "clear", "close",
	"crane", "slate", "stare", "tears", "rates",
}

// LoadTestWords loads TestWords into the word list service
func (t *TestApp) LoadTestWords() error {
	return t.WordListService.LoadWords(TestWords)
}
