package model

import (
	"fmt"
	"strings"
)

const (
	// WordLength is the number of letters in every word of the game
	WordLength = 5

	// Alphabet is the set of letters a word may contain, in padding order
	Alphabet = "abcdefghijklmnopqrstuvwxyz"
)

// ValidateWord checks that a word is exactly length letters from Alphabet
func ValidateWord(word string, length int) error {
	if len(word) != length {
		return fmt.Errorf("%w: %q has %d letters, want %d", ErrMalformedWord, word, len(word), length)
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("%w: %q contains %q", ErrMalformedWord, word, r)
		}
	}
	return nil
}

// NormalizeWord trims surrounding whitespace and lowercases a word
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
