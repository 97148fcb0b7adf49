package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every tuning struct.
type validator interface {
	Validate() error
}

// LoadCyberNinja parses the embedded Cyber Ninja Assault tuning.
// On failure it returns the hardcoded defaults along with the error.
func LoadCyberNinja() (CyberNinjaConfig, error) {
	return parse(defaultCyberNinjaYAML, "cyberninja.yaml", DefaultCyberNinjaConfig)
}

// LoadShadowOps parses the embedded Shadow Ops tuning.
// On failure it returns the hardcoded defaults along with the error.
func LoadShadowOps() (ShadowOpsConfig, error) {
	return parse(defaultShadowOpsYAML, "shadowops.yaml", DefaultShadowOpsConfig)
}

// LoadInput parses the embedded input adapter tuning.
// On failure it returns the hardcoded defaults along with the error.
func LoadInput() (InputConfig, error) {
	return parse(defaultInputYAML, "input.yaml", DefaultInputConfig)
}

// parse decodes data over a zero T and validates the result. Keys missing
// from the YAML stay zero and fail validation rather than silently mixing
// with defaults.
func parse[T validator](data []byte, name string, fallback func() T) (T, error) {
	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback(), fmt.Errorf("config: parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return fallback(), fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}
