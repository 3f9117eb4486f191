package quiz

import (
	"math/rand"
	"time"
)

// Shuffler permutes n elements in place through swap.
// *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a time-seeded Fisher-Yates shuffler
func NewShuffler() Shuffler {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededShuffler returns a deterministic shuffler, mostly for tests
func NewSeededShuffler(seed int64) Shuffler {
	return rand.New(rand.NewSource(seed))
}

func shuffled[T any](s Shuffler, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	s.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
