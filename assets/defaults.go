package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded, commented default configuration
// written out on first run.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte
