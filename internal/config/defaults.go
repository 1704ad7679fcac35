package config

import sstars "github.com/amaurea/s-stars"

const (
	defaultFormat        = "ascii"
	defaultSchemaVersion = 1
	defaultWorkers       = 1
	defaultLogLevel      = "warn"
	defaultLogFormat     = "text"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Format:        defaultFormat,
		SchemaVersion: defaultSchemaVersion,
		Workers:       defaultWorkers,
		Distance: Distance{
			Parsec:      sstars.DefaultDistance.Parsec,
			Uncertainty: sstars.DefaultDistance.Uncertainty,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
