// Package runner executes the waste procedures in order and prints what
// each one did.
package runner

import (
	"context"
	"fmt"
	"io"

	"k8s.io/klog/v2"

	"lowperf/internal/memstats"
	"lowperf/internal/report"
	"lowperf/internal/waste"
	"lowperf/pkg/clock"
	lperrors "lowperf/pkg/errors"
	"lowperf/pkg/random"
)

const (
	bannerLine     = "Starting Low Performance Application..."
	completionLine = "Application completed. Check GC logs for performance issues."
)

// Config wires a Runner.
type Config struct {
	Params waste.Params

	// Clock feeds timestamps into the procedures.
	Clock clock.Clock

	// Rand feeds random ages and tags.
	Rand random.Source

	// Out receives the console lines.
	Out io.Writer

	// Only restricts the run to the named procedures.
	Only []string

	// MemStats adds a heap/GC line after each procedure.
	MemStats bool
}

// Runner executes the selected procedures against one Accumulator.
// The Accumulator outlives every pass and is never reset.
type Runner struct {
	params     waste.Params
	clock      clock.Clock
	rand       random.Source
	out        io.Writer
	memStats   bool
	procedures []waste.Procedure
	acc        *waste.Accumulator

	// wallClock times procedures and stamps the report.
	wallClock clock.Clock
}

// NewRunner creates a runner. It fails only when Only names an unknown
// procedure.
func NewRunner(cfg Config) (*Runner, error) {
	procs, err := waste.Select(cfg.Only)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		params:     cfg.Params,
		clock:      cfg.Clock,
		rand:       cfg.Rand,
		out:        cfg.Out,
		memStats:   cfg.MemStats,
		procedures: procs,
		acc:        waste.NewAccumulator(),
		wallClock:  clock.NewReal(),
	}
	if r.clock == nil {
		r.clock = clock.NewReal()
	}
	if r.rand == nil {
		r.rand = random.NewSeeded(0)
	}
	if r.out == nil {
		r.out = io.Discard
	}
	return r, nil
}

// Accumulator returns the long-lived accumulator the leak procedure fills.
func (r *Runner) Accumulator() *waste.Accumulator {
	return r.acc
}

// Run prints the banner, executes passes passes over the selected
// procedures and prints the completion line. The context is checked
// between procedures only.
func (r *Runner) Run(ctx context.Context, passes int) (*report.Report, error) {
	rep := &report.Report{
		StartedAt: r.wallClock.Now(),
		Passes:    passes,
	}
	w := &lineWriter{w: r.out}

	w.println(bannerLine)
	klog.InfoS("Run started", "passes", passes, "procedures", len(r.procedures))

	for pass := 1; pass <= passes; pass++ {
		for _, proc := range r.procedures {
			if err := ctx.Err(); err != nil {
				return rep, fmt.Errorf("%w before %s: %w", lperrors.ErrInterrupted, proc.Name, err)
			}

			run := r.runOne(w, proc)
			run.Pass = pass
			rep.Procedures = append(rep.Procedures, run)

			if w.err != nil {
				return rep, w.err
			}
		}
	}

	w.println(completionLine)
	rep.FinishedAt = r.wallClock.Now()
	rep.AccumulatorSize = r.acc.Len()

	klog.InfoS("Run completed",
		"passes", passes,
		"accumulator", r.acc.Len(),
		"elapsed", rep.FinishedAt.Sub(rep.StartedAt))

	return rep, w.err
}

func (r *Runner) runOne(w *lineWriter, proc waste.Procedure) report.ProcedureRun {
	env := waste.Env{
		Clock:       r.clock,
		Rand:        r.rand,
		Accumulator: r.acc,
	}

	w.println(proc.Start)

	before := memstats.Sample()
	started := r.wallClock.Now()
	out := proc.Run(r.params, env)
	elapsed := r.wallClock.Now().Sub(started)
	delta := memstats.Diff(before, memstats.Sample())

	w.println(out.Summary)
	if r.memStats {
		w.println("  " + delta.String())
	}

	klog.V(2).InfoS("Procedure finished",
		"name", proc.Name,
		"value", out.Value,
		"duration", elapsed,
		"totalAlloc", delta.TotalAlloc,
		"numGC", delta.NumGC)

	return report.ProcedureRun{
		Name:       proc.Name,
		Summary:    out.Summary,
		Value:      out.Value,
		Duration:   elapsed,
		TotalAlloc: delta.TotalAlloc,
		Mallocs:    delta.Mallocs,
		HeapDelta:  delta.HeapAlloc,
		NumGC:      delta.NumGC,
	}
}

// lineWriter remembers the first write error and drops later writes.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) println(s string) {
	if lw.err != nil {
		return
	}
	if _, err := fmt.Fprintln(lw.w, s); err != nil {
		lw.err = fmt.Errorf("%w: %v", lperrors.ErrOutputWrite, err)
	}
}

