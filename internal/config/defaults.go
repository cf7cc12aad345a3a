package config

import (
	"github.com/ziadkadry99/trendview/internal/loader"
	"github.com/ziadkadry99/trendview/internal/render"
	"github.com/ziadkadry99/trendview/internal/viewstate"
)

// DefaultLanguages are the language tabs the aggregator collects by default.
var DefaultLanguages = []string{
	"python",
	"javascript",
	"go",
	"rust",
	"java",
	"typescript",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Snapshot:        loader.DefaultLocation,
		Port:            8080,
		AllowAllOrigins: false,
		Languages:       append([]string(nil), DefaultLanguages...),
		DefaultLanguage: viewstate.DefaultLanguage,
		OutputDir:       "site",
		Labels:          render.DefaultLabels(),
	}
}
