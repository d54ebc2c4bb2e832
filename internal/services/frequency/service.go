package frequency

import (
	"fmt"
	"sort"

	"github.com/mcoot/wordlestrat/internal/model"
)

// Selection chooses how the top letters of a position are picked
type Selection string

const (
	// SelectionRanked sorts by count descending, breaking ties alphabetically
	SelectionRanked Selection = "ranked"

	// SelectionGreedy fills five slots in table order, then replaces the first
	// minimum entry only when a later letter has a strictly greater count.
	// Under ties it can miss the true top five.
	SelectionGreedy Selection = "greedy"
)

// ParseSelection converts a string to a Selection, defaulting to ranked when empty
func ParseSelection(s string) (Selection, error) {
	switch Selection(s) {
	case "", SelectionRanked:
		return SelectionRanked, nil
	case SelectionGreedy:
		return SelectionGreedy, nil
	default:
		return "", fmt.Errorf("%w: unknown selection %q (want ranked or greedy)", model.ErrInvalidInput, s)
	}
}

// Service computes per-position letter frequencies over a word collection
type Service struct {
	selection Selection
}

// New creates a frequency Service using the given selection mode
func New(selection Selection) *Service {
	if selection == "" {
		selection = SelectionRanked
	}
	return &Service{selection: selection}
}

// Selection returns the service's top-five selection mode
func (s *Service) Selection() Selection {
	return s.selection
}

// BuildPositionFrequencies counts the letter at position in every word.
// Letters never seen are appended with count 0, in alphabetical order, so the
// table always covers the whole alphabet.
func (s *Service) BuildPositionFrequencies(words []string, position int) (model.FrequencyTable, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words to count", model.ErrInvalidInput)
	}
	if position < 0 {
		return nil, fmt.Errorf("%w: position %d is negative", model.ErrInvalidInput, position)
	}

	index := make(map[rune]int, len(model.Alphabet))
	table := make(model.FrequencyTable, 0, len(model.Alphabet))
	for _, word := range words {
		if position >= len(word) {
			return nil, fmt.Errorf("%w: position %d out of range for %q", model.ErrInvalidInput, position, word)
		}
		letter := rune(word[position])
		if i, ok := index[letter]; ok {
			table[i].Count++
			continue
		}
		index[letter] = len(table)
		table = append(table, model.LetterCount{Letter: letter, Count: 1})
	}

	for _, letter := range model.Alphabet {
		if len(table) >= len(model.Alphabet) {
			break
		}
		if _, ok := index[letter]; !ok {
			index[letter] = len(table)
			table = append(table, model.LetterCount{Letter: letter, Count: 0})
		}
	}

	return table, nil
}

// TopFive returns the model.TopCount best letters at position
func (s *Service) TopFive(words []string, position int) (model.TopFive, error) {
	table, err := s.BuildPositionFrequencies(words, position)
	if err != nil {
		return nil, err
	}

	switch s.selection {
	case SelectionGreedy:
		return greedyTop(table, model.TopCount), nil
	default:
		return rankedTop(table, model.TopCount), nil
	}
}

// BestLettersBySlot computes TopFive for every slot of a model.WordLength word
func (s *Service) BestLettersBySlot(words []string) (model.BestLetters, error) {
	best := make(model.BestLetters, len(model.SlotNames))
	for position, slot := range model.SlotNames {
		top, err := s.TopFive(words, position)
		if err != nil {
			return nil, fmt.Errorf("%s slot: %w", slot, err)
		}
		best[slot] = top
	}
	return best, nil
}

func rankedTop(table model.FrequencyTable, n int) model.TopFive {
	sorted := make(model.FrequencyTable, len(table))
	copy(sorted, table)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Letter < sorted[j].Letter
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return model.TopFive(sorted[:n])
}

func greedyTop(table model.FrequencyTable, n int) model.TopFive {
	top := make(model.TopFive, 0, n)
	for _, lc := range table {
		if len(top) < n {
			top = append(top, lc)
			continue
		}

		minIdx := 0
		for i := 1; i < len(top); i++ {
			if top[i].Count < top[minIdx].Count {
				minIdx = i
			}
		}
		if lc.Count > top[minIdx].Count {
			// Evicted entry leaves; newcomer goes to the end, as a re-inserted key would
			top = append(top[:minIdx], top[minIdx+1:]...)
			top = append(top, lc)
		}
	}
	return top
}

// Interface for dependency injection
type ServiceInterface interface {
	BuildPositionFrequencies(words []string, position int) (model.FrequencyTable, error)
	TopFive(words []string, position int) (model.TopFive, error)
	BestLettersBySlot(words []string) (model.BestLetters, error)
}

var _ ServiceInterface = (*Service)(nil)
