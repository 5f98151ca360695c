package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds tool configuration, loaded from an optional YAML file
// with a THREADLOOM_* environment overlay
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Export ExportConfig `mapstructure:"export"`
	Relay  RelayConfig  `mapstructure:"relay"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CacheConfig struct {
	Path string `mapstructure:"path"`
}

type ExportConfig struct {
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

type RelayConfig struct {
	URL string `mapstructure:"url"`
}

// DefaultConfigPath returns the default config file location
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".threadloom.yaml")
}

// Load reads configuration. A missing file is not an error; defaults and
// environment variables still apply. Flags are bound by the CLI layer
// and win over file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cache.path", "")
	v.SetDefault("export.format", "json")
	v.SetDefault("export.dir", ".")
	v.SetDefault("relay.url", "")

	v.SetEnvPrefix("THREADLOOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	if configPath != "" && fileExists(configPath) {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
