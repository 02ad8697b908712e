package config

import (
	"fmt"
	"time"

	"lowperf/internal/waste"
	lperrors "lowperf/pkg/errors"
)

// Config is the full run configuration.
type Config struct {
	Params waste.Params

	// Repeat is the number of passes over the selected procedures.
	Repeat int

	// Seed seeds the random source. Zero means time-seeded.
	Seed uint64

	// Only restricts the run to the named procedures.
	Only []string

	// MemStats prints heap and GC deltas after each procedure.
	MemStats bool

	SourcePath string
	LoadedAt   time.Time
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Params: waste.DefaultParams(),
		Repeat: 1,
	}
}

// Validate reports settings the procedures cannot run with.
func (c *Config) Validate() error {
	if c.Params.KeySpace < 1 {
		return fmt.Errorf("%w: collections key_space must be at least 1", lperrors.ErrInvalidCount)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be at least 1", lperrors.ErrInvalidCount)
	}
	return nil
}
