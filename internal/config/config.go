package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DataConfig selects where the recommendation document comes from.
type DataConfig struct {
	Source      string `yaml:"source"`
	Path        string `yaml:"path"`
	URL         string `yaml:"url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	CardWidth int `yaml:"card_width"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Data DataConfig `yaml:"data"`
	UI   UIConfig   `yaml:"ui"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/travel/config.yaml.
// If neither exists, it writes defaults to ~/.config/travel/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "travel", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Data: DataConfig{Source: "file", Path: "travel_recommendation_api.json", TimeoutSecs: 30},
		UI:   UIConfig{CardWidth: 60},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Data.Source == "" {
		cfg.Data.Source = "file"
	}
	if cfg.Data.Source == "file" && cfg.Data.Path == "" {
		cfg.Data.Path = "travel_recommendation_api.json"
	}
	if cfg.Data.TimeoutSecs == 0 {
		cfg.Data.TimeoutSecs = 30
	}
	if cfg.UI.CardWidth == 0 {
		cfg.UI.CardWidth = 60
	}
}

// applyEnv lets TRAVEL_DATA_URL and TRAVEL_DATA_PATH (usually from .env) override the file.
func applyEnv(cfg *AppConfig) {
	if u := os.Getenv("TRAVEL_DATA_URL"); u != "" {
		cfg.Data.Source = "http"
		cfg.Data.URL = u
		return
	}
	if p := os.Getenv("TRAVEL_DATA_PATH"); p != "" {
		cfg.Data.Source = "file"
		cfg.Data.Path = p
	}
}
