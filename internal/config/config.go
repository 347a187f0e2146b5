package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

/**
 * Server configuration parameters
 * @property {string} address - Server listening address (e.g. "127.0.0.1:8921")
 * @property {string} mode - Application mode (debug/release/test)
 */
type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"`
}

/**
 * Logging configuration
 * @property {string} level - Log level (debug/info/warn/error)
 * @property {string} path - Log file path, "console" for stdout only
 */
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

/**
 * Desktop shell configuration
 * @property {string} theme - Initial color theme (CoolWarm/DarkMode)
 */
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

type SystemConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type AppConfig struct {
	System   SystemConfig    `mapstructure:"system"`
	Server   ServerConfig    `mapstructure:"server"`
	Log      LogConfig       `mapstructure:"log"`
	UI       UIConfig        `mapstructure:"ui"`
	Services []ServiceConfig `mapstructure:"services"`
}

/**
 * Load application configuration from YAML file
 * @description
 * - Looks for config.yaml in the working directory, then in ~/.fastos
 * - Missing file is not an error: built-in defaults cover everything
 */
func LoadConfig() (*AppConfig, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".fastos"))
	}

	var cfg AppConfig
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	} else {
		if err := viper.Unmarshal(&cfg); err != nil {
			return nil, err
		}
	}

	return collectConfig(&cfg), nil
}

var Config AppConfig

func collectConfig(cfg *AppConfig) *AppConfig {
	if cfg.System.Name == "" {
		cfg.System.Name = "FastOS"
	}
	if cfg.System.Version == "" {
		cfg.System.Version = "2.1.0"
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = "127.0.0.1:8921"
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Path == "" {
		cfg.Log.Path = "console"
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = "CoolWarm"
	}
	if len(cfg.Services) == 0 {
		cfg.Services = DefaultServices()
	}
	for i := range cfg.Services {
		cfg.Services[i].Correct()
	}
	return cfg
}

func init() {
	cfg, err := LoadConfig()
	if err == nil {
		Config = *cfg
	} else {
		collectConfig(&Config)
	}
}
