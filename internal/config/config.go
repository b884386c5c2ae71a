package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ConserveLee/gui-cropper/internal/constants"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvConfigPath  = "CROPPER_CONFIG"
	EnvLogLevel    = "CROPPER_LOG_LEVEL"
	EnvPreviewSize = "CROPPER_PREVIEW_SIZE"
)

// Config holds the application configuration
type Config struct {
	Window  WindowConfig  `json:"window"`
	Preview PreviewConfig `json:"preview"`
	Loader  LoaderConfig  `json:"loader"`
	Log     LogConfig     `json:"log"`
}

// WindowConfig holds the main window geometry
type WindowConfig struct {
	Title  string  `json:"title"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// PreviewConfig holds the preview canvas size in pixels
type PreviewConfig struct {
	Size int `json:"size"`
}

// LoaderConfig holds what the image loader accepts
type LoaderConfig struct {
	AllowedTypes      []string `json:"allowed_types"`
	AllowedExtensions []string `json:"allowed_extensions"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level    string `json:"level"`     // debug, info, warn, error
	Encoding string `json:"encoding"`  // console or json
	MaxLines int    `json:"max_lines"` // in-window log cap
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  constants.AppTitle,
			Width:  constants.WindowWidth,
			Height: constants.WindowHeight,
		},
		Preview: PreviewConfig{
			Size: constants.PreviewSize,
		},
		Loader: LoaderConfig{
			AllowedTypes:      append([]string(nil), constants.AllowedTypes...),
			AllowedExtensions: append([]string(nil), constants.AllowedExtensions...),
		},
		Log: LogConfig{
			Level:    constants.DefaultLogLevel,
			Encoding: "console",
			MaxLines: constants.MaxLogLines,
		},
	}
}

// Load builds the configuration from defaults, an optional JSON file named by
// CROPPER_CONFIG and individual environment overrides. A .env file in the
// working directory is read first if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Ignoring .env: %v", err)
	}

	cfg := Default()
	if path := os.Getenv(EnvConfigPath); path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	cfg.Log.Level = getEnv(EnvLogLevel, cfg.Log.Level)
	cfg.Preview.Size = getEnvAsInt(EnvPreviewSize, cfg.Preview.Size)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a JSON file. Fields missing from the
// file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive")
	}

	if c.Preview.Size < 1 {
		return fmt.Errorf("preview.size must be positive")
	}

	if len(c.Loader.AllowedTypes) == 0 {
		return fmt.Errorf("loader.allowed_types cannot be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}

	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("log.encoding must be console or json")
	}

	if c.Log.MaxLines < 1 {
		return fmt.Errorf("log.max_lines must be positive")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
