package redis

import (
	"fmt"

	"github.com/mcoot/wordlestrat/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "wordlestrat"

// wordListKey returns the Redis key for the ordered word LIST
func wordListKey() string {
	return fmt.Sprintf("%s:words", keyPrefix)
}

// runKey returns the Redis key for a Run
func runKey(id model.RunID) string {
	return fmt.Sprintf("%s:run:%s", keyPrefix, id)
}

// runsIndexKey returns the Redis key for the ZSET of run IDs scored by creation time
func runsIndexKey() string {
	return fmt.Sprintf("%s:idx:runs", keyPrefix)
}
