package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/urbanlogix/tripdesk/core/predict"
	"github.com/urbanlogix/tripdesk/infra/metrics"
	"github.com/urbanlogix/tripdesk/infra/routing"
)

type Config struct {
	Data    DataConfig     `json:"data"`
	Server  ServerConfig   `json:"server"`
	Model   predict.Config `json:"model"`
	Routing routing.Config `json:"routing"`
	Metrics metrics.Config `json:"metrics"`
	Pricing PricingConfig  `json:"pricing"`
	Rules   []RuleConfig   `json:"rules"`
}

// DataConfig locates the historical corpus.
type DataConfig struct {
	// CSVPath is the traffic dataset file.
	CSVPath string `json:"csv_path"`
}

// Validate checks mandatory fields.
func (c DataConfig) Validate() error {
	if c.CSVPath == "" {
		return fmt.Errorf("data.csv_path is required")
	}
	return nil
}

// ServerConfig holds the API listener settings.
type ServerConfig struct {
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("TD_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "td_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Server.SetDefaults()
	cfg.Model.SetDefaults()
	cfg.Routing.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Data.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Model.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
