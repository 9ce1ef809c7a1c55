package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultViewerYAML []byte
