package config

import (
	_ "embed"
)

//go:embed defaults/robojobs.yaml
var defaultYAML []byte
