package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sstars "github.com/amaurea/s-stars"
	"github.com/amaurea/s-stars/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reformat.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	assert.Equal(t, "ascii", cfg.Format)
	assert.Equal(t, 1, cfg.SchemaVersion)
	assert.Equal(t, 1, cfg.Workers)
	assert.Empty(t, cfg.Summary)
	assert.Equal(t, 8179.0, cfg.Distance.Parsec)
	assert.Equal(t, 13.0, cfg.Distance.Uncertainty)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
format = "HTML"
schema_version = 2
workers = 4
summary = "yaml"

[distance]
parsec = 8300.0
uncertainty = 20.0

[logging]
level = "Warning"
format = "json"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, 2, cfg.SchemaVersion)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "yaml", cfg.Summary)
	assert.Equal(t, config.Distance{Parsec: 8300, Uncertainty: 20}, cfg.Distance)
	assert.Equal(t, config.Logging{Level: "warn", Format: "json"}, cfg.Logging)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[distance]\nparsec = 8000.0\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8000.0, cfg.Distance.Parsec)
	assert.Equal(t, 13.0, cfg.Distance.Uncertainty)
	assert.Equal(t, "ascii", cfg.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "format = \"html\"\nworkers = 2\n")
	t.Setenv("REFORMAT_FORMAT", "wiki")
	t.Setenv("REFORMAT_DISTANCE_PARSEC", "8200")
	t.Setenv("REFORMAT_LOGGING_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "wiki", cfg.Format)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 8200.0, cfg.Distance.Parsec)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvMalformed(t *testing.T) {
	t.Setenv("REFORMAT_WORKERS", "many")
	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read environment")
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]struct {
		body    string
		wantMsg string
	}{
		"unknown key": {
			body:    "colour = \"red\"\n",
			wantMsg: "colour",
		},
		"bad toml": {
			body:    "format = \n",
			wantMsg: "parse config",
		},
		"bad format": {
			body:    "format = \"csv\"\n",
			wantMsg: "config format: csv does not satisfy oneof=ascii html wiki",
		},
		"bad schema": {
			body:    "schema_version = 3\n",
			wantMsg: "config schema_version: 3 does not satisfy oneof=1 2",
		},
		"zero distance": {
			body:    "[distance]\nparsec = 0.0\n",
			wantMsg: "config distance.parsec: 0 does not satisfy gt=0",
		},
		"negative uncertainty": {
			body:    "[distance]\nuncertainty = -1.0\n",
			wantMsg: "config distance.uncertainty: -1 does not satisfy gte=0",
		},
		"too many workers": {
			body:    "workers = 1000\n",
			wantMsg: "config workers: 1000 does not satisfy max=256",
		},
		"bad summary": {
			body:    "summary = \"xml\"\n",
			wantMsg: "config summary: xml does not satisfy oneof=table yaml json",
		},
		"bad log level": {
			body:    "[logging]\nlevel = \"trace\"\n",
			wantMsg: "config logging.level: trace",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "open config")
}

func TestLoadHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "reformat.toml"), []byte("workers = 3\n"), 0o600))

	cfg, err := config.Load("~/reformat.toml")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Format = "wiki"
	cfg.SchemaVersion = 2
	cfg.Workers = 8
	cfg.Distance = config.Distance{Parsec: 8000, Uncertainty: 10}

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, sstars.Options{
		Format:   sstars.Wiki,
		Schema:   sstars.SchemaV2,
		Distance: sstars.Distance{Parsec: 8000, Uncertainty: 10},
		Workers:  8,
	}, opts)
}

func TestOptionsInvalid(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Format = "csv"
	_, err := cfg.Options()
	require.ErrorIs(t, err, sstars.ErrUnsupportedFormat)

	cfg = config.Default()
	cfg.SchemaVersion = 5
	_, err = cfg.Options()
	require.ErrorIs(t, err, sstars.ErrUnsupportedSchema)
}
