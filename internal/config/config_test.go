package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  listen: "127.0.0.1"
  port: 9000
engine:
  url: "http://manticore.local:9308/json/search"
  index_name: "docs"
  replace_return_url: "https://wiki.example.org/wiki/"
  search_count: 8
  snippet_length: 120
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Listen != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
	if cfg.Engine.Host != "manticore.local" || cfg.Engine.Port != 9308 || cfg.Engine.Path != "/json/search" {
		t.Errorf("engine url not split: %+v", cfg.Engine)
	}
	if cfg.Engine.IndexName != "docs" || cfg.Engine.SearchCount != 8 || cfg.Engine.SnippetLength != 120 {
		t.Errorf("unexpected engine config: %+v", cfg.Engine)
	}
	if cfg.Engine.ReturnURL != "https://wiki.example.org/wiki/" {
		t.Errorf("return url = %q", cfg.Engine.ReturnURL)
	}
	// Unset keys pick up defaults.
	if cfg.Engine.Type != "manticore" {
		t.Errorf("engine type default = %q", cfg.Engine.Type)
	}
	if cfg.Engine.TemplatePath != "rule_manticore.txt" {
		t.Errorf("template path default = %q", cfg.Engine.TemplatePath)
	}
	if cfg.Engine.TimeoutSeconds != 10 {
		t.Errorf("timeout default = %d", cfg.Engine.TimeoutSeconds)
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_invalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("\t: not yaml"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Listen != "0.0.0.0" {
		t.Errorf("default listen: got %s", cfg.Server.Listen)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Engine.Type != "manticore" {
		t.Errorf("default engine type: got %s", cfg.Engine.Type)
	}
	if cfg.Engine.URL != "http://127.0.0.1:29308/search" {
		t.Errorf("default engine url: got %s", cfg.Engine.URL)
	}
	if cfg.Engine.IndexName != "wiki_main" {
		t.Errorf("default index: got %s", cfg.Engine.IndexName)
	}
	if cfg.Engine.SearchCount != 5 {
		t.Errorf("default search count: got %d", cfg.Engine.SearchCount)
	}
	if cfg.Engine.SnippetLength != 200 {
		t.Errorf("default snippet length: got %d", cfg.Engine.SnippetLength)
	}
}

func TestDefault_endpoint(t *testing.T) {
	cfg := Default()
	if got := cfg.Engine.Endpoint(); got != "http://127.0.0.1:29308/search" {
		t.Errorf("Endpoint = %q", got)
	}
}

func TestSplitURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantHost string
		wantPort int
		wantPath string
	}{
		{"full url", "http://127.0.0.1:29308/search", "127.0.0.1", 29308, "/search"},
		{"no port defaults to 80", "http://example.com/search", "example.com", 80, "/search"},
		{"no path defaults to root", "http://example.com:9308", "example.com", 9308, "/"},
		{"bare host and port", "localhost:9308/search", "localhost", 9308, "/search"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EngineConfig{URL: tt.url}
			if err := e.splitURL(); err != nil {
				t.Fatalf("splitURL error: %v", err)
			}
			if e.Host != tt.wantHost || e.Port != tt.wantPort || e.Path != tt.wantPath {
				t.Errorf("splitURL(%q) = %s:%d%s, want %s:%d%s",
					tt.url, e.Host, e.Port, e.Path, tt.wantHost, tt.wantPort, tt.wantPath)
			}
		})
	}
}
