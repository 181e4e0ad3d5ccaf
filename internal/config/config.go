// Package config loads the evaluator's runtime configuration from a YAML
// document, in the same load-decode-validate shape the teacher's manifest
// loader uses for package.yml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxCallDepth bounds the evaluator's Go call stack against a
// buggy or adversarial bound tree when a document does not set one.
const DefaultMaxCallDepth = 10000

// EvaluatorConfig controls evaluator behavior that has no representation
// in the bound tree itself: a recursion ceiling, and the seeding of the
// `rnd` built-in's pseudo-random generator.
type EvaluatorConfig struct {
	MaxCallDepth  int
	Deterministic bool
	Seed          int64
}

// evaluatorConfigFile mirrors EvaluatorConfig's YAML shape. Decoding into
// an intermediate type keeps zero-value detection (was MaxCallDepth
// present at all?) separate from the defaulted public struct.
type evaluatorConfigFile struct {
	MaxCallDepth  *int   `yaml:"maxCallDepth"`
	Deterministic *bool  `yaml:"deterministic"`
	Seed          *int64 `yaml:"seed"`
}

// ValidationError aggregates configuration validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Default returns the configuration the evaluator uses when no document
// is supplied: a non-deterministic, lazily-seeded PRNG and the default
// call depth ceiling.
func Default() EvaluatorConfig {
	return EvaluatorConfig{MaxCallDepth: DefaultMaxCallDepth}
}

// Load parses an EvaluatorConfig from a YAML file at path, applying
// defaults for any field the document omits.
func Load(path string) (EvaluatorConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return EvaluatorConfig{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	return Decode(file)
}

// Decode parses an EvaluatorConfig from r, applying defaults for any
// field the document omits.
func Decode(r io.Reader) (EvaluatorConfig, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw evaluatorConfigFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return EvaluatorConfig{}, fmt.Errorf("config: parse: %w", err)
	}

	cfg := Default()
	if raw.MaxCallDepth != nil {
		cfg.MaxCallDepth = *raw.MaxCallDepth
	}
	if raw.Deterministic != nil {
		cfg.Deterministic = *raw.Deterministic
	}
	if raw.Seed != nil {
		cfg.Seed = *raw.Seed
	}

	if err := cfg.validate(); err != nil {
		return EvaluatorConfig{}, err
	}
	return cfg, nil
}

func (c EvaluatorConfig) validate() error {
	var errs ValidationError
	if c.MaxCallDepth <= 0 {
		errs.Issues = append(errs.Issues, "maxCallDepth must be positive")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}
