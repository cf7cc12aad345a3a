package config

import "github.com/ziadkadry99/trendview/internal/render"

// Config is the top-level trendview configuration, corresponding to .trendview.yml.
type Config struct {
	Snapshot        string        `yaml:"snapshot" koanf:"snapshot"`
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Languages       []string      `yaml:"languages" koanf:"languages"`
	DefaultLanguage string        `yaml:"default_language" koanf:"default_language"`
	Notice          string        `yaml:"notice,omitempty" koanf:"notice"`
	OutputDir       string        `yaml:"output_dir" koanf:"output_dir"`
	Labels          render.Labels `yaml:"labels" koanf:"labels"`
}
