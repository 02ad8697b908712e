package waste

import (
	"fmt"
	"strings"

	"lowperf/pkg/clock"
	lperrors "lowperf/pkg/errors"
	"lowperf/pkg/random"
)

// Procedure names, in run order.
const (
	NameStrings     = "strings"
	NameObjects     = "objects"
	NameCollections = "collections"
	NameLeak        = "leak"
	NameBoxing      = "boxing"
)

// Env carries the capabilities a procedure may use.
type Env struct {
	Clock       clock.Clock
	Rand        random.Source
	Accumulator *Accumulator
}

// Outcome is what a procedure reports back to the runner.
type Outcome struct {
	Summary string
	// Value is the headline number of the summary line.
	Value int64
}

// Procedure is one named demonstration.
type Procedure struct {
	Name  string
	Start string
	Run   func(p Params, env Env) Outcome
}

var procedures = []Procedure{
	{
		Name:  NameStrings,
		Start: "Executing inefficient string operations...",
		Run: func(p Params, env Env) Outcome {
			res := ConcatStrings(p.StringIterations, env.Clock)
			return Outcome{
				Summary: fmt.Sprintf("String operations completed. Result length: %d", res.FinalLen),
				Value:   int64(res.FinalLen),
			}
		},
	},
	{
		Name:  NameObjects,
		Start: "Creating wasteful objects...",
		Run: func(p Params, env Env) Outcome {
			res := CreateUsers(p.ObjectIterations, p.TagsPerRecord, env.Rand)
			return Outcome{
				Summary: fmt.Sprintf("Created %d user objects", len(res.Users)),
				Value:   int64(len(res.Users)),
			}
		},
	},
	{
		Name:  NameCollections,
		Start: "Demonstrating bad collection usage...",
		Run: func(p Params, env Env) Outcome {
			res := GrowCollections(p.CollectionIterations, p.PlaceholderWidth, p.KeySpace)
			return Outcome{
				Summary: fmt.Sprintf("Collections processed: %d even numbers", res.Evens),
				Value:   int64(res.Evens),
			}
		},
	},
	{
		Name:  NameLeak,
		Start: "Simulating memory leaks...",
		Run: func(p Params, env Env) Outcome {
			res := SimulateLeak(p.LeakIterations, p.PaddingWidth, env.Clock, env.Accumulator)
			return Outcome{
				Summary: fmt.Sprintf("Added %d items to global cache", res.Total),
				Value:   int64(res.Total),
			}
		},
	},
	{
		Name:  NameBoxing,
		Start: "Demonstrating boxing/unboxing waste...",
		Run: func(p Params, env Env) Outcome {
			res := BoxIntegers(p.BoxingIterations, p.SqrtKeys)
			return Outcome{
				Summary: fmt.Sprintf("Boxing operations completed. Sum: %d", res.Sum),
				Value:   res.Sum,
			}
		},
	},
}

// Procedures returns all procedures in run order.
func Procedures() []Procedure {
	out := make([]Procedure, len(procedures))
	copy(out, procedures)
	return out
}

// Select returns the named procedures in run order, regardless of the
// order of names. An empty names list selects everything.
func Select(names []string) ([]Procedure, error) {
	if len(names) == 0 {
		return Procedures(), nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if !known(n) {
			return nil, fmt.Errorf("%w: %q", lperrors.ErrUnknownProcedure, n)
		}
		want[n] = true
	}
	if len(want) == 0 {
		return Procedures(), nil
	}

	var out []Procedure
	for _, p := range procedures {
		if want[p.Name] {
			out = append(out, p)
		}
	}
	return out, nil
}

func known(name string) bool {
	for _, p := range procedures {
		if p.Name == name {
			return true
		}
	}
	return false
}
