// Package random provides the integer source used by the waste procedures.
//
// Like clock.Clock, a Source is injected so tests can replace random ages
// and tags with known values.
package random

import (
	"math/rand/v2"
	"time"
)

// Source yields integers in [0, n).
type Source interface {
	IntN(n int) int
}

// PCGSource is a seeded math/rand/v2 generator.
type PCGSource struct {
	r *rand.Rand
}

// IntN returns a pseudo-random integer in [0, n).
func (s *PCGSource) IntN(n int) int {
	return s.r.IntN(n)
}

// NewSeeded returns a reproducible Source for seed. A zero seed is
// replaced with the current time.
func NewSeeded(seed uint64) *PCGSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PCGSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// ConstSource always returns V reduced into [0, n).
type ConstSource struct {
	V int
}

// IntN returns V mod n.
func (s ConstSource) IntN(n int) int {
	return s.V % n
}

// SequenceSource replays Values in order, wrapping around.
// It is not safe for concurrent use.
type SequenceSource struct {
	Values []int
	next   int
}

// IntN returns the next value reduced into [0, n).
func (s *SequenceSource) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v % n
}

var (
	_ Source = (*PCGSource)(nil)
	_ Source = ConstSource{}
	_ Source = (*SequenceSource)(nil)
)
