package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath names the environment variable holding an optional TOML
// overlay path.
const EnvConfigPath = "SSZ_CONFIG"

// fileConfig mirrors the TOML overlay shape. Params points at the run's
// default set so absent keys keep their defaults; modes travel as strings
// and are parsed into the closed enums.
type fileConfig struct {
	Version      *string `toml:"version"`
	XiMode       *string `toml:"xi_mode"`
	RedshiftMode *string `toml:"redshift_mode"`
	Workers      *int    `toml:"workers"`
	Params       *Params `toml:"params"`
}

// LoadRun builds a run snapshot from the defaults plus a TOML overlay file.
// A missing file is not an error; a malformed one is.
func LoadRun(path string) (Run, error) {
	run := NewRun()
	if path == "" {
		return run, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return run, nil
		}
		return Run{}, fmt.Errorf("read config %s: %w", path, err)
	}

	fc := fileConfig{Params: &run.Params}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Run{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Version != nil {
		run.Version = *fc.Version
	}
	if fc.XiMode != nil {
		mode, err := ParseXiMode(*fc.XiMode)
		if err != nil {
			return Run{}, fmt.Errorf("config %s: %w", path, err)
		}
		run.XiMode = mode
	}
	if fc.RedshiftMode != nil {
		mode, err := ParseRedshiftMode(*fc.RedshiftMode)
		if err != nil {
			return Run{}, fmt.Errorf("config %s: %w", path, err)
		}
		run.RedshiftMode = mode
	}
	if fc.Workers != nil {
		run.Workers = *fc.Workers
	}

	return run, nil
}

// FromEnv loads the run configuration from the SSZ_CONFIG overlay if set.
func FromEnv() (Run, error) {
	return LoadRun(os.Getenv(EnvConfigPath))
}
