package model

// SlotNames names each letter position of a word, left to right
var SlotNames = [WordLength]string{"first", "second", "third", "fourth", "fifth"}

// TopCount is the number of letters kept per slot
const TopCount = 5

// LetterCount pairs a letter with how often it occurs in a position
type LetterCount struct {
	Letter rune
	Count  int
}

// FrequencyTable holds letter counts for a single position.
// Entries are in order of first occurrence, followed by zero-count padding in
// alphabetical order.
type FrequencyTable []LetterCount

// Total returns the sum of all counts in the table
func (t FrequencyTable) Total() int {
	total := 0
	for _, lc := range t {
		total += lc.Count
	}
	return total
}

// Get returns the count for a letter and whether it is present
func (t FrequencyTable) Get(letter rune) (int, bool) {
	for _, lc := range t {
		if lc.Letter == letter {
			return lc.Count, true
		}
	}
	return 0, false
}

// TopFive is the TopCount highest-count letters for a position
type TopFive []LetterCount

// Letters returns just the letters, in table order
func (t TopFive) Letters() string {
	letters := make([]rune, len(t))
	for i, lc := range t {
		letters[i] = lc.Letter
	}
	return string(letters)
}

// BestLetters maps a slot name (see SlotNames) to its top letters
type BestLetters map[string]TopFive
