// Package config assembles the runtime configuration from built-in
// defaults, an optional YAML file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/edgequiz/internal/llm"
	"github.com/abhisek/edgequiz/internal/logging"
	"github.com/abhisek/edgequiz/internal/quiz"
)

// MaxQuestions caps the session length a user may ask for.
const MaxQuestions = 20

// Config is the full application configuration.
type Config struct {
	LLM  LLMSection  `yaml:"llm"`
	Quiz QuizSection `yaml:"quiz"`

	// DBPath is the LLM audit log database. Empty means the default path.
	DBPath string `yaml:"db"`

	// LogLevel enables the file log when set (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogFile overrides the log destination.
	LogFile string `yaml:"log_file"`
}

// LLMSection is the llm block of the config file. The provider blocks
// come from llm.Config; model and api_key are shorthands that apply to
// whichever provider is selected.
type LLMSection struct {
	llm.Config `yaml:",inline"`

	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"api_key"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// QuizSection is the quiz block of the config file.
type QuizSection struct {
	Questions int `yaml:"questions"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LLM: LLMSection{
			Config:      llm.DefaultConfig(),
			MaxTokens:   2048,
			Temperature: 0.7,
		},
		Quiz: QuizSection{Questions: quiz.DefaultQuestionCount},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/edgequiz/config.yaml, falling back
// to ~/.config/edgequiz/config.yaml.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("determine home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "edgequiz", "config.yaml"), nil
}

// Load builds the configuration. An explicit path must exist; when path is
// empty the default location is read if present. Values from .env never
// override variables already set in the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	if err := cfg.readFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	c.applyShorthands()
	return nil
}

// applyShorthands moves the provider-agnostic model and key onto the
// selected provider block.
func (c *Config) applyShorthands() {
	if c.LLM.Provider == "" {
		return
	}
	if c.LLM.APIKey != "" {
		c.LLM.SetAPIKey(c.LLM.APIKey)
	}
	if c.LLM.Model != "" {
		c.LLM.SetModel(c.LLM.Model)
	}
}

func (c *Config) applyEnv() error {
	c.LLM.ApplyEnv()
	if c.LLM.Provider == "" {
		c.LLM.Provider = "gemini"
	}

	// Without an explicit provider key, fall back to the well-known
	// vendor variables.
	if os.Getenv("EDGEQUIZ_LLM_PROVIDER") == "" && c.LLM.Config.APIKey() == "" {
		if found, ok := llm.DiscoverConfig(); ok {
			c.LLM.Provider = found.Provider
			c.LLM.SetAPIKey(found.APIKey())
			if c.LLM.Model != "" {
				c.LLM.SetModel(c.LLM.Model)
			}
		}
	}

	if v := os.Getenv("EDGEQUIZ_QUESTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EDGEQUIZ_QUESTIONS=%q is not a number", v)
		}
		c.Quiz.Questions = n
	}
	if v := os.Getenv("EDGEQUIZ_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("EDGEQUIZ_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("EDGEQUIZ_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	return nil
}

// Validate checks the quiz and logging settings together with the LLM
// provider settings.
func (c Config) Validate() error {
	if err := c.ValidateQuiz(); err != nil {
		return err
	}
	return c.LLM.Validate()
}

// ValidateQuiz checks everything except the LLM provider, which the
// interactive game can run without.
func (c Config) ValidateQuiz() error {
	if c.Quiz.Questions < 1 || c.Quiz.Questions > MaxQuestions {
		return fmt.Errorf("questions must be between 1 and %d, got %d", MaxQuestions, c.Quiz.Questions)
	}
	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("llm max_tokens must not be negative, got %d", c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 1 {
		return fmt.Errorf("llm temperature must be between 0 and 1, got %v", c.LLM.Temperature)
	}
	if c.LogLevel != "" && c.LogLevel != "off" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}
