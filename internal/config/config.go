package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port           string   `toml:"port"`
	Mode           string   `toml:"mode"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type AirtableConfig struct {
	BaseID string `toml:"base_id"`
	Token  string `toml:"token"`
}

type LogConfig struct {
	Mode string `toml:"mode"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Airtable AirtableConfig `toml:"airtable"`
	Log      LogConfig      `toml:"log"`
}

// Load reads the TOML config file, then applies environment overrides. A
// missing file is not an error: credentials are usually supplied purely
// through the environment.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg.applyEnv()

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("SERVER_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv("AIRTABLE_BASE_ID"); v != "" {
		c.Airtable.BaseID = v
	}
	if v := os.Getenv("AIRTABLE_API_TOKEN"); v != "" {
		c.Airtable.Token = v
	}
	if v := os.Getenv("LOG_MODE"); v != "" {
		c.Log.Mode = v
	}
}

// Validate checks the configuration the service cannot run without.
func (c *Config) Validate() error {
	if c.Airtable.Token == "" {
		return errors.New("AIRTABLE_API_TOKEN is required")
	}
	if c.Airtable.BaseID == "" {
		return errors.New("AIRTABLE_BASE_ID is required")
	}
	return nil
}
