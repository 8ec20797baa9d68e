// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from YAML files on top of built-in defaults, validated, and
// handed to the logger, the metadata catalogue and the cryptography modules.
package config
