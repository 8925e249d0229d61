// Package config handles configuration loading, parsing, and validation
// from the environment, an optional .env file and an optional config.yaml.
// The resulting Config is built once at start-up and handed to every
// component that needs it.
package config
