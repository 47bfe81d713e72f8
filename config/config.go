// Package config loads the YAML configuration for the packing service.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
	Excel  ExcelConfig  `yaml:"excel"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// RateLimit is requests per second, 0 disables limiting
	RateLimit float64 `yaml:"rateLimit"`
	RateBurst int     `yaml:"rateBurst"`
}

type SearchConfig struct {
	Concurrency   int `yaml:"concurrency"`
	MaxCandidates int `yaml:"maxCandidates"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// ExcelConfig names the header cells of the box catalog sheet.
type ExcelConfig struct {
	IDColumn   string `yaml:"idColumn"`
	SizeColumn string `yaml:"sizeColumn"`
	QtyColumn  string `yaml:"qtyColumn"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080", RateLimit: 20, RateBurst: 40},
		Search: SearchConfig{Concurrency: 6},
		Log:    LogConfig{Level: "info"},
		Excel:  ExcelConfig{IDColumn: "箱号", SizeColumn: "尺寸", QtyColumn: "数量"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// PALLET_ADDR, or PORT, overrides the listen address.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("PALLET_ADDR"); v != "" {
		cfg.Server.Addr = v
	} else if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rateLimit must be >= 0")
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst <= 0 {
		return fmt.Errorf("server.rateBurst must be > 0 when rate limiting")
	}
	if c.Search.Concurrency <= 0 {
		return fmt.Errorf("search.concurrency must be > 0")
	}
	if c.Search.MaxCandidates < 0 {
		return fmt.Errorf("search.maxCandidates must be >= 0")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level: %s (allowed: debug,info,warn,error)", c.Log.Level)
	}
	if c.Excel.IDColumn == "" || c.Excel.SizeColumn == "" || c.Excel.QtyColumn == "" {
		return fmt.Errorf("excel column names must not be empty")
	}
	return nil
}
