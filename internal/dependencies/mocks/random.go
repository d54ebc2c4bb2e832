package mocks

import (
	"github.com/mcoot/wordlestrat/internal/dependencies/random"
)

// MockRandom replays queued draws. Intn values are reduced modulo the
// requested bound so a queued index can never fall outside the word list.
type MockRandom struct {
	intns   []int
	strings []string
	bounds  []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates an empty MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued value modulo n, or 0 once the queue is drained
func (r *MockRandom) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	i := len(r.bounds) - 1
	if i >= len(r.intns) {
		return 0
	}
	if n > 0 {
		return r.intns[i] % n
	}
	return r.intns[i]
}

// String returns the next queued string, or "" once the queue is drained
func (r *MockRandom) String(_ int, _ string) string {
	if len(r.strings) == 0 {
		return ""
	}
	next := r.strings[0]
	r.strings = r.strings[1:]
	return next
}

// QueueIntn appends values to the Intn queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.intns = append(r.intns, values...)
}

// QueueString appends values to the String queue
func (r *MockRandom) QueueString(values ...string) {
	r.strings = append(r.strings, values...)
}

// IntnCalls returns how many times Intn has been called
func (r *MockRandom) IntnCalls() int {
	return len(r.bounds)
}

// IntnBounds returns the bound passed to each Intn call, in order
func (r *MockRandom) IntnBounds() []int {
	return append([]int(nil), r.bounds...)
}
