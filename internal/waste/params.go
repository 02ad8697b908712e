// Package waste implements the five allocation-heavy demonstration
// procedures: string concatenation in a loop, temporary object creation,
// unsized collection growth, unbounded accumulation and boxing.
//
// The procedures are wasteful on purpose. Each one allocates a fresh
// object graph per iteration and must keep doing so; do not optimize the
// loops away. Everything non-deterministic (time, random numbers) and the
// one piece of long-lived state (the Accumulator) is passed in.
package waste

// Params holds the iteration counts and sizes for every procedure.
type Params struct {
	StringIterations int

	ObjectIterations int
	TagsPerRecord    int

	CollectionIterations int
	PlaceholderWidth     int
	KeySpace             int

	LeakIterations int
	PaddingWidth   int

	BoxingIterations int
	SqrtKeys         int
}

// DefaultParams returns the counts the demonstration runs with.
func DefaultParams() Params {
	return Params{
		StringIterations:     50000,
		ObjectIterations:     100000,
		TagsPerRecord:        10,
		CollectionIterations: 100000,
		PlaceholderWidth:     100,
		KeySpace:             1000,
		LeakIterations:       50000,
		PaddingWidth:         100,
		BoxingIterations:     100000,
		SqrtKeys:             50000,
	}
}
