// Package config loads the Mnemos client configuration: defaults, then an
// optional JSON or YAML file (-c/-config), then command-line flags.
package config
