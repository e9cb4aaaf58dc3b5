// Package config loads calc configuration files.
//
// Configuration is written in CUE and validated against the embedded
// #Config definition, which is closed: unknown fields are rejected.
//
//	mode:     "programming"
//	base:     16
//	database: "~/.calc/history.db"
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/calc/internal/engine"
)

//go:embed schema.cue
var schemaCUE string

// Config is a decoded configuration file. Zero values mean "not set".
type Config struct {
	Mode     string `json:"mode,omitempty"`
	Angle    string `json:"angle,omitempty"`
	Base     int    `json:"base,omitempty"`
	Database string `json:"database,omitempty"`
	Format   string `json:"format,omitempty"`
	Verbose  bool   `json:"verbose,omitempty"`
}

// Error is a configuration error with the position it was found at.
type Error struct {
	Message string
	Pos     token.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, data)
}

// Parse validates CUE source against #Config and decodes it.
// filename is only used in error positions.
func Parse(filename string, data []byte) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	unified := def.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return nil, formatCUEError(err)
	}
	return &cfg, nil
}

// EngineOptions converts the engine settings of c into engine options.
func (c *Config) EngineOptions() ([]engine.Option, error) {
	var opts []engine.Option
	if c.Mode != "" {
		m, err := engine.ParseMode(c.Mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithMode(m))
	}
	if c.Angle != "" {
		a, err := engine.ParseAngleMode(c.Angle)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithAngleMode(a))
	}
	if c.Base != 0 {
		b := engine.Base(c.Base)
		if !b.Valid() {
			return nil, fmt.Errorf("unsupported base %d", c.Base)
		}
		opts = append(opts, engine.WithBase(b))
	}
	return opts, nil
}

// formatCUEError returns the first CUE error with its position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &Error{Message: err.Error()}
	}

	first := errs[0]
	cerr := &Error{Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		cerr.Pos = positions[0]
	}
	return cerr
}
