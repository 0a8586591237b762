// Package config loads the service configuration: a YAML file with
// env var overrides for the deploy-specific values.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Source   SourceConfig  `yaml:"source"`
	Server   ServerConfig  `yaml:"server"`
	Features FeatureConfig `yaml:"features"`
}

// SourceConfig points at the tender document.
type SourceConfig struct {
	Path string `yaml:"path"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// FeatureConfig gates the richer behavior that used to live in a
// copy-forked second implementation.
type FeatureConfig struct {
	RichEventProps    bool `yaml:"rich_event_props"`
	UrgentWindowDays  int  `yaml:"urgent_window_days"`
	TitleDisplayLimit int  `yaml:"title_display_limit"`
}

func defaults() Config {
	return Config{
		Source: SourceConfig{Path: "output/tender_opportunities.json"},
		Server: ServerConfig{
			Port:        "8081",
			CORSOrigins: []string{"http://localhost:4200"},
		},
		Features: FeatureConfig{
			RichEventProps:    true,
			UrgentWindowDays:  7,
			TitleDisplayLimit: 80,
		},
	}
}

// Load reads the YAML file at path, falling back to defaults when the
// file does not exist, then applies env overrides (TENDERS_SOURCE,
// PORT, CORS_ORIGINS).
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := os.Getenv("TENDERS_SOURCE"); v != "" {
		cfg.Source.Path = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.Server.CORSOrigins = origins
		}
	}

	if cfg.Features.UrgentWindowDays <= 0 {
		cfg.Features.UrgentWindowDays = 7
	}
	if cfg.Features.TitleDisplayLimit <= 0 {
		cfg.Features.TitleDisplayLimit = 80
	}
	return cfg, nil
}
