package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	BaseURL   string        `mapstructure:"base_url"`
	TargetDir string        `mapstructure:"target_dir"`
	Client    string        `mapstructure:"client"`
	Timeout   time.Duration `mapstructure:"timeout"`
	HistoryDB string        `mapstructure:"history_db"`
	AssumeYes bool          `mapstructure:"assume_yes"`
	Exclude   []string      `mapstructure:"exclude"`
}

var Default = Config{
	BaseURL:   "https://raw.githubusercontent.com/kitinstall/kit/main",
	TargetDir: ".",
	Client:    "http",
	Timeout:   30 * time.Second,
	AssumeYes: false,
	Exclude:   []string{},
}

// Dir returns ~/.kitinstall, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}

	dir := filepath.Join(home, ".kitinstall")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}

	return dir, nil
}

func Load() (*Config, error) {
	configDir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetDefault("base_url", Default.BaseURL)
	v.SetDefault("target_dir", Default.TargetDir)
	v.SetDefault("client", Default.Client)
	v.SetDefault("timeout", Default.Timeout)
	v.SetDefault("history_db", filepath.Join(configDir, "history.db"))
	v.SetDefault("assume_yes", Default.AssumeYes)
	v.SetDefault("exclude", Default.Exclude)

	v.SetEnvPrefix("KITINSTALL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := errors.AsType[viper.ConfigFileNotFoundError](err); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base_url must not be empty")
	}

	return &cfg, nil
}
