// Package config resolves the desktop shell settings.
//
// Precedence, lowest first: built-in defaults, the optional YAML file,
// a .env file in the working directory, then YARGIZEKA_* variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAppID        = "com.yargizeka.app"
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// Config holds application configuration.
type Config struct {
	AppID        string  `yaml:"app_id"`
	LogLevel     string  `yaml:"log_level"`  // debug, info, warn, error
	LogFormat    string  `yaml:"log_format"` // text, json
	WindowWidth  float32 `yaml:"window_width"`
	WindowHeight float32 `yaml:"window_height"`
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

var validLogFormats = []string{"text", "json"}

func Default() *Config {
	return &Config{
		AppID:        DefaultAppID,
		LogLevel:     "info",
		LogFormat:    "text",
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load builds the configuration. path may be empty, in which case no YAML
// file is read.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	c.AppID = getEnv("YARGIZEKA_APP_ID", c.AppID)
	c.LogLevel = getEnv("YARGIZEKA_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("YARGIZEKA_LOG_FORMAT", c.LogFormat)

	var err error
	if c.WindowWidth, err = getFloatEnv("YARGIZEKA_WINDOW_WIDTH", c.WindowWidth); err != nil {
		return err
	}
	if c.WindowHeight, err = getFloatEnv("YARGIZEKA_WINDOW_HEIGHT", c.WindowHeight); err != nil {
		return err
	}
	return nil
}

// Validate checks the enumerated fields and window size.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level %q: must be one of %v", c.LogLevel, validLogLevels)
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("invalid log format %q: must be one of %v", c.LogFormat, validLogFormats)
	}
	if !validSize(c.WindowWidth) || !validSize(c.WindowHeight) {
		return fmt.Errorf("invalid window size %vx%v", c.WindowWidth, c.WindowHeight)
	}
	if c.AppID == "" {
		return errors.New("app id must not be empty")
	}
	return nil
}

// validSize rejects zero, negative, NaN and infinite dimensions.
func validSize(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 0)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float32) (float32, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return float32(f), nil
}
