package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 7777
	}
	if cfg.Engine.Type == "" {
		cfg.Engine.Type = "manticore"
	}
	if cfg.Engine.URL == "" {
		cfg.Engine.URL = "http://127.0.0.1:29308/search"
	}
	if cfg.Engine.IndexName == "" {
		cfg.Engine.IndexName = "wiki_main"
	}
	if cfg.Engine.ReturnURL == "" {
		cfg.Engine.ReturnURL = "http://localhost/mediawiki/index.php/"
	}
	if cfg.Engine.SearchCount == 0 {
		cfg.Engine.SearchCount = 5
	}
	if cfg.Engine.SnippetLength == 0 {
		cfg.Engine.SnippetLength = 200
	}
	if cfg.Engine.TemplatePath == "" {
		cfg.Engine.TemplatePath = "rule_manticore.txt"
	}
	if cfg.Engine.TimeoutSeconds == 0 {
		cfg.Engine.TimeoutSeconds = 10
	}
}
