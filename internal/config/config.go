// Package config loads tg-mosaic settings from a config file, the environment
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Keys shared by the config file, env vars and flags.
const (
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyOutput    = "output"
)

// EnvPrefix is prepended to upper-cased keys, so log-level reads TG_MOSAIC_LOG_LEVEL.
const EnvPrefix = "TG_MOSAIC"

// Config holds the resolved settings.
type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	// Output is the directory split writes into when none is given.
	Output string `mapstructure:"output"`
}

// New returns a viper instance with defaults and env binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyOutput, "tiles")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads cfgFile into v. With an empty cfgFile it looks for
// $HOME/.tg-mosaic.yaml and silently continues when there is none.
// It returns the path of the file used, or "" when none was read.
func ReadFile(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", nil
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".tg-mosaic")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes the current settings of v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}
