// Package configs provides embedded configuration files for jsprune.
package configs

import _ "embed"

// DefaultConfigYAML contains the default configuration file content written by `jsprune init`.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
