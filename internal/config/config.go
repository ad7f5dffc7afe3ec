// Package config provides configuration loading and structs for the kensaku gateway.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the gateway.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Listen string `yaml:"listen"`
	Port   int    `yaml:"port"`
}

// EngineConfig holds backend search engine settings. Host, Port and Path are
// derived from URL at load time.
type EngineConfig struct {
	Type           string `yaml:"type"`
	URL            string `yaml:"url"`
	IndexName      string `yaml:"index_name"`
	ReturnURL      string `yaml:"replace_return_url"`
	SearchCount    int    `yaml:"search_count"`
	SnippetLength  int    `yaml:"snippet_length"`
	TemplatePath   string `yaml:"template_path"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	Host string `yaml:"-"`
	Port int    `yaml:"-"`
	Path string `yaml:"-"`
}

// Endpoint returns the backend URL rendered queries are posted to.
func (e *EngineConfig) Endpoint() string {
	return fmt.Sprintf("http://%s:%d%s", e.Host, e.Port, e.Path)
}

// Timeout returns the backend call deadline.
func (e *EngineConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// splitURL fills Host, Port and Path from URL. Port defaults to 80 and path
// to "/" when absent; a bare host without scheme is accepted.
func (e *EngineConfig) splitURL() error {
	raw := e.URL
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		u, err = url.Parse("http://" + raw)
		if err != nil || u.Host == "" {
			return fmt.Errorf("invalid engine url %q", raw)
		}
	}
	e.Host = u.Hostname()
	e.Port = 80
	if p := u.Port(); p != "" {
		if n, convErr := strconv.Atoi(p); convErr == nil {
			e.Port = n
		}
	}
	e.Path = u.Path
	if e.Path == "" {
		e.Path = "/"
	}
	return nil
}

// Load reads and parses the config file at path, applies defaults, and
// splits the engine URL. Returns an error if the file cannot be read or
// parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	if err := cfg.Engine.splitURL(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	// Defaults always parse.
	_ = cfg.Engine.splitURL()
	return cfg
}
