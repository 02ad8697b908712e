package report

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	lperrors "lowperf/pkg/errors"
)

func sampleReport() *Report {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	return &Report{
		StartedAt:  start,
		FinishedAt: start.Add(3 * time.Second),
		Passes:     2,
		Procedures: []ProcedureRun{
			{Pass: 1, Name: "leak", Summary: "Added 10 items to global cache", Value: 10, Duration: time.Millisecond},
			{Pass: 1, Name: "boxing", Summary: "Boxing operations completed. Sum: 18", Value: 18},
			{Pass: 2, Name: "leak", Summary: "Added 20 items to global cache", Value: 20, HeapDelta: -512},
		},
		AccumulatorSize: 20,
	}
}

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.cbor")
	want := sampleReport()

	if err := WriteFile(path, want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if !got.StartedAt.Equal(want.StartedAt) || !got.FinishedAt.Equal(want.FinishedAt) {
		t.Errorf("times differ: got %v..%v", got.StartedAt, got.FinishedAt)
	}
	if got.Passes != 2 || got.AccumulatorSize != 20 {
		t.Errorf("unexpected header: %+v", got)
	}

	if len(got.Procedures) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(got.Procedures))
	}
	second := got.Procedures[2]
	if second.Name != "leak" || second.Pass != 2 || second.Value != 20 || second.HeapDelta != -512 {
		t.Errorf("unexpected second leak run: %+v", second)
	}
	if got.Procedures[0].Duration != time.Millisecond {
		t.Errorf("expected 1ms, got %v", got.Procedures[0].Duration)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := Encode(&a, sampleReport()); err != nil {
		t.Fatal(err)
	}
	if err := Encode(&b, sampleReport()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("expected identical encodings")
	}

	got, err := Decode(&a)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got.Procedures) != 3 {
		t.Errorf("expected 3 procedures, got %d", len(got.Procedures))
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "run.cbor")
	err := WriteFile(path, sampleReport())
	if !errors.Is(err, lperrors.ErrReportWrite) {
		t.Errorf("expected ErrReportWrite, got %v", err)
	}
}
