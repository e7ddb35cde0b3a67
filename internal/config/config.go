package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type SandboxConfig struct {
	Timeout     int    `mapstructure:"timeout"` // seconds
	Profile     string `mapstructure:"profile"`
	ProfilesDir string `mapstructure:"profiles_dir"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type Config struct {
	Sandbox SandboxConfig `mapstructure:"sandbox"`
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("pybox")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.pybox")

	v.SetDefault("sandbox.timeout", 5)
	v.SetDefault("sandbox.profile", "python")
	v.SetDefault("server.port", 8080)
	v.SetDefault("storage.db_path", filepath.Join(os.Getenv("HOME"), ".pybox", "pybox.db"))

	if err := v.ReadInConfig(); err != nil {
		// Running without a config file is normal; the defaults are a
		// complete configuration.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Timeout returns the per-execution deadline.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Sandbox.Timeout) * time.Second
}

// InterpreterProfile resolves the configured interpreter profile. Without a
// profiles directory the built-in python profile is used.
func (c *Config) InterpreterProfile() (Profile, error) {
	if c.Sandbox.ProfilesDir == "" {
		return DefaultProfile(), nil
	}
	p, err := LoadProfile(filepath.Join(c.Sandbox.ProfilesDir, c.Sandbox.Profile+".yaml"))
	if err != nil {
		return Profile{}, err
	}
	return *p, nil
}
