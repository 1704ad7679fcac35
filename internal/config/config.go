package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	sstars "github.com/amaurea/s-stars"
)

// EnvPrefix prefixes every environment override, e.g. REFORMAT_FORMAT or
// REFORMAT_DISTANCE_PARSEC.
const EnvPrefix = "REFORMAT"

// Distance is the assumed distance to the observed system.
type Distance struct {
	Parsec      float64 `toml:"parsec" envconfig:"PARSEC" validate:"gt=0"`
	Uncertainty float64 `toml:"uncertainty" envconfig:"UNCERTAINTY" validate:"gte=0"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `toml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// Config holds every setting of a conversion run.
type Config struct {
	Format        string   `toml:"format" envconfig:"FORMAT" validate:"oneof=ascii html wiki"`
	SchemaVersion int      `toml:"schema_version" envconfig:"SCHEMA_VERSION" validate:"oneof=1 2"`
	Workers       int      `toml:"workers" envconfig:"WORKERS" validate:"min=1,max=256"`
	Summary       string   `toml:"summary" envconfig:"SUMMARY" validate:"omitempty,oneof=table yaml json"`
	Distance      Distance `toml:"distance" envconfig:"DISTANCE"`
	Logging       Logging  `toml:"logging" envconfig:"LOGGING"`
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty), and the environment. A path that is given but missing is an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) decodeFile(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	file, err := os.Open(expanded)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("parse config %s: %s", expanded, strict.String())
		}
		return fmt.Errorf("parse config %s: %w", expanded, err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Summary = strings.ToLower(strings.TrimSpace(c.Summary))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
}

// Options translates the configuration into converter options. Logger and
// Diagnostics are left for the caller.
func (c *Config) Options() (sstars.Options, error) {
	format, err := sstars.ParseFormat(c.Format)
	if err != nil {
		return sstars.Options{}, err
	}
	schema, err := sstars.ParseSchema(c.SchemaVersion)
	if err != nil {
		return sstars.Options{}, err
	}
	return sstars.Options{
		Format: format,
		Schema: schema,
		Distance: sstars.Distance{
			Parsec:      c.Distance.Parsec,
			Uncertainty: c.Distance.Uncertainty,
		},
		Workers: c.Workers,
	}, nil
}

func expandPath(pathValue string) (string, error) {
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	return filepath.Clean(pathValue), nil
}
