package waste

import (
	"strconv"
	"strings"

	"lowperf/pkg/clock"
)

// Accumulator retains every string it is given for as long as it lives.
// There is no removal or reset. Entries are keyed by insertion position,
// so repeated leak passes keep growing the map as well as the slice.
// It is not safe for concurrent use.
type Accumulator struct {
	entries []string
	byKey   map[int]string
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{byKey: map[int]string{}}
}

// Add retains s.
func (a *Accumulator) Add(s string) {
	a.byKey[len(a.entries)] = s
	a.entries = append(a.entries, s)
}

// Len returns the number of retained entries.
func (a *Accumulator) Len() int {
	return len(a.entries)
}

// MapLen returns the number of keyed entries.
func (a *Accumulator) MapLen() int {
	return len(a.byKey)
}

// Get returns the entry stored under key.
func (a *Accumulator) Get(key int) (string, bool) {
	s, ok := a.byKey[key]
	return s, ok
}

// LeakResult summarizes SimulateLeak.
type LeakResult struct {
	Added int
	Total int
}

// SimulateLeak adds iterations large strings to acc.
func SimulateLeak(iterations, padding int, clk clock.Clock, acc *Accumulator) LeakResult {
	for i := 0; i < iterations; i++ {
		data := "LargeDataString_" + strconv.Itoa(i) + "_" +
			strings.Repeat("x", padding) + "_" + strconv.FormatInt(clk.Now().UnixNano(), 10)
		acc.Add(data)
	}
	return LeakResult{Added: iterations, Total: acc.Len()}
}
