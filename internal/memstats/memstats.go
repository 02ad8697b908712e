// Package memstats samples the Go runtime's heap and GC counters so the
// runner can show what each procedure cost.
package memstats

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

// Snapshot is a subset of runtime.MemStats.
type Snapshot struct {
	HeapAlloc    uint64
	TotalAlloc   uint64
	Mallocs      uint64
	Frees        uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// Sample reads the current runtime counters.
func Sample() Snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Snapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Mallocs:      m.Mallocs,
		Frees:        m.Frees,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Delta is the difference between two snapshots.
type Delta struct {
	// HeapAlloc can shrink across a GC, so it is signed.
	HeapAlloc  int64
	TotalAlloc uint64
	Mallocs    uint64
	NumGC      uint32
	Pause      time.Duration
}

// Diff returns after minus before.
func Diff(before, after Snapshot) Delta {
	return Delta{
		HeapAlloc:  int64(after.HeapAlloc) - int64(before.HeapAlloc),
		TotalAlloc: after.TotalAlloc - before.TotalAlloc,
		Mallocs:    after.Mallocs - before.Mallocs,
		NumGC:      after.NumGC - before.NumGC,
		Pause:      time.Duration(after.PauseTotalNs - before.PauseTotalNs),
	}
}

// String renders the delta as one console line.
func (d Delta) String() string {
	return fmt.Sprintf("allocated %s in %d objects, live heap %s, %d GC cycles, %v paused",
		humanize.IBytes(d.TotalAlloc), d.Mallocs, formatSigned(d.HeapAlloc), d.NumGC, d.Pause)
}

// formatSigned renders a heap delta with an explicit sign.
func formatSigned(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return "+" + humanize.IBytes(uint64(n))
}
