package model

import "errors"

// Common errors used across the application
var (
	// Input errors
	ErrMissingFile   = errors.New("word list file could not be opened")
	ErrMalformedWord = errors.New("malformed word")
	ErrInvalidInput  = errors.New("invalid input")

	// Word list errors
	ErrWordListNotLoaded = errors.New("word list not loaded")

	// Run errors
	ErrRunNotFound = errors.New("run not found")
)
