// Package config loads run configuration from .lpconf files.
//
// The format is line based:
//
//	# comment
//	[strings]
//	iterations = 50000
//
//	[run]
//	repeat = 2
//	only = leak, boxing
//
// Keys that are not set keep their defaults.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	lperrors "lowperf/pkg/errors"
)

// LoadFromFile loads a Config from a .lpconf file.
func LoadFromFile(path string, loadedAt time.Time) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lperrors.ErrConfigRead, err)
	}
	defer file.Close()

	cfg, err := parse(file, loadedAt)
	if err != nil {
		return nil, err
	}
	cfg.SourcePath = path
	return cfg, nil
}

// LoadFromString loads a Config from content.
func LoadFromString(content string, loadedAt time.Time) (*Config, error) {
	return parse(strings.NewReader(content), loadedAt)
}

func parse(r io.Reader, loadedAt time.Time) (*Config, error) {
	cfg := Default()
	cfg.LoadedAt = loadedAt

	scanner := bufio.NewScanner(r)
	lineNum := 0
	var section string

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			if _, ok := sectionKeys[section]; !ok {
				return nil, &ParseError{Line: lineNum, Message: "unknown section: " + section}
			}
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, &ParseError{Line: lineNum, Message: "invalid line format, expected 'key = value'"}
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if section == "" {
			return nil, &ParseError{Line: lineNum, Message: "key outside of section"}
		}

		if section == "run" {
			if err := applyRun(cfg, key, value); err != nil {
				return nil, &ParseError{Line: lineNum, Message: err.Error(), Err: err}
			}
			continue
		}

		target, ok := sectionKeys[section][key]
		if !ok {
			return nil, &ParseError{Line: lineNum, Message: "unknown " + section + " key: " + key}
		}
		n, err := parseCount(value)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Message: err.Error(), Err: err}
		}
		*target(&cfg.Params) = n
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", lperrors.ErrConfigRead, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyRun(cfg *Config, key, value string) error {
	switch key {
	case "repeat":
		n, err := parseCount(value)
		if err != nil {
			return err
		}
		cfg.Repeat = n
	case "seed":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed: %s", value)
		}
		cfg.Seed = n
	case "only":
		cfg.Only = splitList(value)
	case "memstats":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid memstats: %s (must be true or false)", value)
		}
		cfg.MemStats = b
	default:
		return fmt.Errorf("unknown run key: %s", key)
	}
	return nil
}

func parseCount(value string) (int, error) {
	n, err := strconv.Atoi(strings.ReplaceAll(value, "_", ""))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s", lperrors.ErrInvalidCount, value)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseError represents a config parsing error.
type ParseError struct {
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
