package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lowperf/internal/waste"
	lperrors "lowperf/pkg/errors"
)

var loadedAt = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func TestLoadFromString_FullConfig(t *testing.T) {
	content := `
# Small run
[strings]
iterations = 1_000

[objects]
iterations = 2000
tags = 3

[collections]
iterations = 4000
placeholder_width = 8
key_space = 10

[leak]
iterations = 500
padding = 16

[boxing]
iterations = 600
sqrt_keys = 70

[run]
repeat = 2
seed = 42
only = leak, boxing
memstats = true
`
	cfg, err := LoadFromString(content, loadedAt)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	want := waste.Params{
		StringIterations:     1000,
		ObjectIterations:     2000,
		TagsPerRecord:        3,
		CollectionIterations: 4000,
		PlaceholderWidth:     8,
		KeySpace:             10,
		LeakIterations:       500,
		PaddingWidth:         16,
		BoxingIterations:     600,
		SqrtKeys:             70,
	}
	if cfg.Params != want {
		t.Errorf("expected params %+v, got %+v", want, cfg.Params)
	}
	if cfg.Repeat != 2 || cfg.Seed != 42 || !cfg.MemStats {
		t.Errorf("unexpected run settings: repeat=%d seed=%d memstats=%v", cfg.Repeat, cfg.Seed, cfg.MemStats)
	}
	if len(cfg.Only) != 2 || cfg.Only[0] != "leak" || cfg.Only[1] != "boxing" {
		t.Errorf("expected only [leak boxing], got %v", cfg.Only)
	}
	if !cfg.LoadedAt.Equal(loadedAt) {
		t.Errorf("expected LoadedAt %v, got %v", loadedAt, cfg.LoadedAt)
	}
}

func TestLoadFromString_DefaultsKept(t *testing.T) {
	cfg, err := LoadFromString("[leak]\niterations = 10\n", loadedAt)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	want := waste.DefaultParams()
	want.LeakIterations = 10
	if cfg.Params != want {
		t.Errorf("expected %+v, got %+v", want, cfg.Params)
	}
	if cfg.Repeat != 1 {
		t.Errorf("expected default repeat 1, got %d", cfg.Repeat)
	}
}

func TestLoadFromString_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
		wantErr  error
	}{
		{
			name:     "unknown section",
			content:  "[gc]\n",
			wantLine: 1,
		},
		{
			name:     "key outside section",
			content:  "# header\niterations = 5\n",
			wantLine: 2,
		},
		{
			name:     "missing equals",
			content:  "[strings]\niterations\n",
			wantLine: 2,
		},
		{
			name:     "unknown key",
			content:  "[boxing]\nwidth = 3\n",
			wantLine: 2,
		},
		{
			name:     "negative count",
			content:  "[objects]\n\niterations = -1\n",
			wantLine: 3,
			wantErr:  lperrors.ErrInvalidCount,
		},
		{
			name:     "not a number",
			content:  "[run]\nrepeat = many\n",
			wantLine: 2,
			wantErr:  lperrors.ErrInvalidCount,
		},
		{
			name:     "bad memstats",
			content:  "[run]\nmemstats = maybe\n",
			wantLine: 2,
		},
		{
			name:     "unknown run key",
			content:  "[run]\nparallel = 4\n",
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.content, loadedAt)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("expected line %d, got %d", tt.wantLine, pe.Line)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v in chain, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFromString_InvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero key space", content: "[collections]\nkey_space = 0\n"},
		{name: "zero repeat", content: "[run]\nrepeat = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.content, loadedAt)
			if !errors.Is(err, lperrors.ErrInvalidCount) {
				t.Errorf("expected ErrInvalidCount, got %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.lpconf")
	if err := os.WriteFile(path, []byte("[boxing]\niterations = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path, loadedAt)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Params.BoxingIterations != 4 {
		t.Errorf("expected 4 boxing iterations, got %d", cfg.Params.BoxingIterations)
	}
	if cfg.SourcePath != path {
		t.Errorf("expected SourcePath %s, got %s", path, cfg.SourcePath)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.lpconf"), loadedAt)
	if !errors.Is(err, lperrors.ErrConfigRead) {
		t.Errorf("expected ErrConfigRead, got %v", err)
	}
}
