package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by LoadConfig
const EnvPrefix = "WORDBREAK"

// Config holds all configuration for the application
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Segmenter  SegmenterConfig  `mapstructure:"segmenter"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig holds word list related configuration
type DictionaryConfig struct {
	Path          string `mapstructure:"path"`
	MinWordLength int    `mapstructure:"min_word_length"`
	Seed          bool   `mapstructure:"seed"`
}

// SegmenterConfig holds segmentation related configuration
type SegmenterConfig struct {
	MaxWordLength  int  `mapstructure:"max_word_length"`
	PassNonLetters bool `mapstructure:"pass_non_letters"`
}

// BatchConfig holds batch query configuration
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// ServerConfig holds server related configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Addr returns the host:port the server listens on
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig loads configuration from an optional .env file, the config
// file at configPath (if any) and WORDBREAK_* environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "words_alpha.txt")
	v.SetDefault("dictionary.min_word_length", 3)
	v.SetDefault("dictionary.seed", true)

	v.SetDefault("segmenter.max_word_length", 30)
	v.SetDefault("segmenter.pass_non_letters", true)

	v.SetDefault("batch.workers", 4)

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dictionary.MinWordLength <= 0 {
		return fmt.Errorf("invalid dictionary min word length: %d", c.Dictionary.MinWordLength)
	}
	if c.Dictionary.Path == "" && !c.Dictionary.Seed {
		return fmt.Errorf("dictionary needs a word list path or seeding enabled")
	}
	if c.Segmenter.MaxWordLength <= 0 {
		return fmt.Errorf("invalid segmenter max word length: %d", c.Segmenter.MaxWordLength)
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("invalid batch workers: %d", c.Batch.Workers)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid server shutdown timeout: %s", c.Server.ShutdownTimeout)
	}
	return nil
}
