// Package config loads, normalizes, and validates reformat run settings.
//
// Settings come from repository defaults, an optional TOML file, and
// REFORMAT_* environment variables, in increasing precedence. Command-line
// flags are applied on top by the CLI. Validation failures name the offending
// TOML key so a bad file can be fixed without reading code.
package config
