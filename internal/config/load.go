package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is named explicitly.
const DefaultPath = "config.yaml"

// Load reads and validates the YAML config at path, then resolves the API key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.ResolveAPIKey()
	return cfg, nil
}

// LoadOrDefault behaves like Load, except that a missing file at DefaultPath
// yields the built-in defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if err != nil && path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		cfg.ResolveAPIKey()
		return cfg, nil
	}
	return cfg, err
}

// ResolveAPIKey fills LLM.APIKey from the environment when the file left it
// empty. A .env file in the working directory is loaded first if present.
func (c *Config) ResolveAPIKey() {
	if c.LLM.APIKey != "" {
		return
	}

	// .env is optional
	_ = godotenv.Load()

	switch c.LLM.Provider {
	case ProviderGemini:
		c.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		if c.LLM.APIKey == "" {
			c.LLM.APIKey = os.Getenv("GOOGLE_API_KEY")
		}
	default:
		c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}
