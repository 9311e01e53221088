// Package random provides the seeded randomness used by selection,
// hints, and the random quick mode.
package random

import (
	"math/rand"
	"time"
)

// Source wraps a seeded rand.Rand so tests can pin the sequence.
type Source struct {
	rnd *rand.Rand
}

// New returns a Source seeded with the current time.
func New() *Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Source with a fixed seed.
func NewSeeded(seed int64) *Source {
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rnd.Float64()
}

// Intn returns a uniform value in [0, n).
func (s *Source) Intn(n int) int {
	return s.rnd.Intn(n)
}

// DigitCount is the length of a digit sequence.
const DigitCount = 16

// Digits is a fixed batch of base-10 digits produced from a single
// random draw. Related settings decisions index into it positionally
// instead of each drawing from the generator.
type Digits [DigitCount]int

// Digits draws one 64-bit value and decomposes it into decimal digits.
func (s *Source) Digits() Digits {
	var d Digits
	u := s.rnd.Uint64()
	for i := range d {
		d[i] = int(u % 10)
		u /= 10
	}
	return d
}

// PickIndex returns a uniform index into a slice of the given length,
// or -1 when the slice is empty.
func (s *Source) PickIndex(length int) int {
	if length <= 0 {
		return -1
	}
	return s.rnd.Intn(length)
}

// TakeN samples up to n distinct elements without replacement. When n
// meets or exceeds the input length the whole input is returned in a
// random permutation. The input slice is never mutated.
func TakeN[T any](s *Source, items []T, n int) []T {
	if len(items) == 0 || n <= 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}
	work := make([]T, len(items))
	copy(work, items)
	// Partial Fisher-Yates: the first n slots end up uniformly sampled.
	for i := 0; i < n; i++ {
		j := i + s.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n]
}

// TakeOne returns one uniformly chosen element, or the zero value for
// an empty slice.
func TakeOne[T any](s *Source, items []T) T {
	var zero T
	idx := s.PickIndex(len(items))
	if idx < 0 {
		return zero
	}
	return items[idx]
}
