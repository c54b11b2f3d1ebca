// Package config loads, normalizes, and validates mlstdb configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. Every knob the CLI needs, from
// the translation table location to the report score row, is resolved in one
// pass so commands receive sanitized values and clear validation errors.
package config
