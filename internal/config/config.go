// Package config resolves runtime settings from defaults, an optional
// shelf.yaml, an optional .env file and SHELF_* environment variables,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyDataFile     = "data_file"
	KeyTheme        = "theme"
	KeyLogLevel     = "log_level"
	KeyLogFile      = "log_file"
	KeyLoadingDelay = "loading_delay"
	KeyStartScreen  = "start_screen"

	envPrefix = "SHELF"
)

var themes = []string{"classic", "neon", "mono"}

// Config is the resolved configuration.
type Config struct {
	DataFile     string
	Theme        string
	LogLevel     string
	LogFile      string
	LoadingDelay time.Duration
	StartScreen  string
	// Source is the config file that was read, if any.
	Source string
}

// Options points Load at explicit files. Empty fields use the defaults:
// shelf.yaml in the working directory or $HOME/.shelf, and ./.env.
type Options struct {
	ConfigFile string
	EnvFile    string
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataFile, "")
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLoadingDelay, 10*time.Second)
	v.SetDefault(KeyStartScreen, "")
}

// Load reads configuration into v and returns the validated result.
// Flags should already be bound to v under the Key* names.
func Load(v *viper.Viper, opt Options) (*Config, error) {
	SetDefaults(v)

	if err := loadDotEnv(opt.EnvFile); err != nil {
		return nil, err
	}

	if opt.ConfigFile != "" {
		v.SetConfigFile(opt.ConfigFile)
	} else {
		v.SetConfigName("shelf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".shelf"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opt.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	c := &Config{
		DataFile:     v.GetString(KeyDataFile),
		Theme:        strings.ToLower(v.GetString(KeyTheme)),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFile:      v.GetString(KeyLogFile),
		LoadingDelay: v.GetDuration(KeyLoadingDelay),
		StartScreen:  strings.ToLower(v.GetString(KeyStartScreen)),
		Source:       v.ConfigFileUsed(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// loadDotEnv exports a .env file into the process environment so that
// AutomaticEnv sees it. Variables that are already set are left alone.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// Validate rejects values no screen can work with.
func (c *Config) Validate() error {
	if !slices.Contains(themes, c.Theme) {
		return fmt.Errorf("theme %q: want one of %s", c.Theme, strings.Join(themes, ", "))
	}
	if c.LoadingDelay <= 0 {
		return fmt.Errorf("loading_delay must be positive, got %s", c.LoadingDelay)
	}
	return nil
}
