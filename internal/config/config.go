package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model: API credentials, server
// settings, analysis knobs, and lexical resource overrides.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Resources   ResourcesConfig   `yaml:"resources"`
	Storage     StorageConfig     `yaml:"storage"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Origins allowed by CORS for the API routes
	CORSOrigins []string `yaml:"corsOrigins"`
	// Directory with the built frontend; empty disables static serving
	StaticDir string `yaml:"staticDir"`
}

type CredentialsConfig struct {
	// OAuth 1.0a credentials for the v1.1 timeline API.
	// Empty fields fall back to TWITTER_* environment variables.
	ConsumerKey    string `yaml:"consumerKey"`
	ConsumerSecret string `yaml:"consumerSecret"`
	AccessToken    string `yaml:"accessToken"`
	AccessSecret   string `yaml:"accessSecret"`
}

type AnalysisConfig struct {
	// Posts requested per timeline fetch (API caps at 200)
	TimelineCount int `yaml:"timelineCount"`
	// Minutes a cached timeline snapshot stays fresh
	SnapshotTTLMinutes int `yaml:"snapshotTtlMinutes"`
}

type ResourcesConfig struct {
	// Word-per-line stop-word files, merged; empty uses the embedded lists
	StopWordPaths []string `yaml:"stopWordPaths"`
	// Tab-separated valence lexicon; empty uses the embedded default
	ValencePath string `yaml:"valencePath"`
}

type StorageConfig struct {
	DBPath string `yaml:"dbPath"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8081",
			CORSOrigins: []string{"http://localhost:8080"},
			StaticDir:   "",
		},
		Analysis: AnalysisConfig{TimelineCount: 200, SnapshotTTLMinutes: 15},
		Storage:  StorageConfig{DBPath: "./birdscope.db"},
		Metrics:  MetricsConfig{Addr: ""},
	}
}

// ResolveEnv fills in credential fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if c.Credentials.ConsumerKey == "" {
		c.Credentials.ConsumerKey = os.Getenv("TWITTER_CONSUMER_KEY")
	}
	if c.Credentials.ConsumerSecret == "" {
		c.Credentials.ConsumerSecret = os.Getenv("TWITTER_CONSUMER_SECRET")
	}
	if c.Credentials.AccessToken == "" {
		c.Credentials.AccessToken = os.Getenv("TWITTER_ACCESS_TOKEN")
	}
	if c.Credentials.AccessSecret == "" {
		c.Credentials.AccessSecret = os.Getenv("TWITTER_ACCESS_SECRET")
	}
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
