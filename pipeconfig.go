// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PipelineConfig is a plain data loader for the numeric knobs an
// operator commonly wants to externalize without recompiling: Bounded
// ranges, Scale factors, and RateLimit intervals, each keyed by a
// caller-chosen pipe/segment name. It does not build segments itself —
// the core stays file-format-agnostic (spec.md §6: "the core has no
// wire or file format") — callers read the relevant entry and pass it
// to [NewBounded]/[NewScale]/[NewRateLimit] themselves.
type PipelineConfig struct {
	Bounded   map[string]BoundedConfig   `yaml:"bounded"`
	Scale     map[string]ScaleConfig     `yaml:"scale"`
	RateLimit map[string]RateLimitConfig `yaml:"rate_limit"`
}

// BoundedConfig is one named [NewBounded] clamp range.
type BoundedConfig struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// ScaleConfig is one named [NewScale] factor.
type ScaleConfig struct {
	Num float64 `yaml:"num"`
	Den float64 `yaml:"den"`
}

// RateLimitConfig is one named [NewRateLimit] suppression interval.
type RateLimitConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// LoadPipelineConfig reads and parses a [PipelineConfig] from path.
func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePipelineConfig(data)
}

// ParsePipelineConfig parses a [PipelineConfig] from raw YAML bytes.
func ParsePipelineConfig(data []byte) (*PipelineConfig, error) {
	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
