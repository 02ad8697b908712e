// Package report records what a run did and persists it as CBOR.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	lperrors "lowperf/pkg/errors"
)

// Report describes one process run.
type Report struct {
	StartedAt       time.Time      `cbor:"started_at"`
	FinishedAt      time.Time      `cbor:"finished_at"`
	Passes          int            `cbor:"passes"`
	Procedures      []ProcedureRun `cbor:"procedures"`
	AccumulatorSize int            `cbor:"accumulator_size"`
}

// ProcedureRun is one procedure execution within a pass.
type ProcedureRun struct {
	Pass       int           `cbor:"pass"`
	Name       string        `cbor:"name"`
	Summary    string        `cbor:"summary"`
	Value      int64         `cbor:"value"`
	Duration   time.Duration `cbor:"duration_ns"`
	TotalAlloc uint64        `cbor:"total_alloc"`
	Mallocs    uint64        `cbor:"mallocs"`
	HeapDelta  int64         `cbor:"heap_delta"`
	NumGC      uint32        `cbor:"num_gc"`
}

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.EncOptions{
		Sort: cbor.SortCoreDeterministic,
		Time: cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// Encode writes r to w.
func Encode(w io.Writer, r *Report) error {
	if err := encMode.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("%w: %v", lperrors.ErrReportWrite, err)
	}
	return nil
}

// Decode reads one report from rd.
func Decode(rd io.Reader) (*Report, error) {
	var r Report
	if err := cbor.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &r, nil
}

// WriteFile encodes r to path, replacing any existing file.
func WriteFile(path string, r *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", lperrors.ErrReportWrite, err)
	}
	if err := Encode(f, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", lperrors.ErrReportWrite, err)
	}
	return nil
}

// ReadFile decodes the report stored at path.
func ReadFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
