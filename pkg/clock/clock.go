// Package clock provides the time source used by the waste procedures.
//
// Procedures never call time.Now() directly. They receive a Clock so a
// test can pin the timestamps that end up embedded in generated text:
//
//	fixed := clock.NewFixed(time.UnixMilli(1700000000000))
//	res := waste.ConcatStrings(1000, fixed)
//
// cmd/lowperf passes the real clock.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return c.T
}

// StepClock advances by Step on every call, starting at Start.
// It is not safe for concurrent use.
type StepClock struct {
	Start time.Time
	Step  time.Duration
	calls int64
}

// Now returns Start + n*Step for the n-th call (zero based).
func (c *StepClock) Now() time.Time {
	t := c.Start.Add(time.Duration(c.calls) * c.Step)
	c.calls++
	return t
}

// NewReal returns a Clock backed by the system time.
func NewReal() Clock {
	return RealClock{}
}

// NewFixed returns a Clock that always returns t.
func NewFixed(t time.Time) Clock {
	return FixedClock{T: t}
}

// NewStep returns a Clock that moves forward by step on every reading.
func NewStep(start time.Time, step time.Duration) *StepClock {
	return &StepClock{Start: start, Step: step}
}

var (
	_ Clock = RealClock{}
	_ Clock = FixedClock{}
	_ Clock = (*StepClock)(nil)
)
