// apps/go-cli/internal/config/config.go
//
// Runtime configuration.
//
// Sources, later ones win:
//   1. Defaults (Default()).
//   2. Optional YAML file (--config).
//   3. Environment variables; main loads a `.env` file first via godotenv.
//
// Environment variables:
//   WORDLE_WORD_LENGTH, WORDLE_MAX_ATTEMPTS, WORDLE_POLICY, WORDLE_ALLOW_FIXED_ANSWER,
//   WORDS_ANSWERS_FILE, WORDS_ALLOWED_FILE, WORDS_DB, DAILY_SALT,
//   PORT, LOG_LEVEL, JWT_SECRET, COOKIE_NAME, CLIENT_ORIGIN
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

type Config struct {
	WordLength  int    `yaml:"word_length" env:"WORDLE_WORD_LENGTH"`
	MaxAttempts int    `yaml:"max_attempts" env:"WORDLE_MAX_ATTEMPTS"`
	Policy      string `yaml:"policy" env:"WORDLE_POLICY"`

	AnswersFile string `yaml:"answers_file" env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `yaml:"allowed_file" env:"WORDS_ALLOWED_FILE"`
	WordsDB     string `yaml:"words_db" env:"WORDS_DB"`
	DailySalt   string `yaml:"daily_salt" env:"DAILY_SALT"`

	Port             string `yaml:"port" env:"PORT"`
	LogLevel         string `yaml:"log_level" env:"LOG_LEVEL"`
	JWTSecret        string `yaml:"jwt_secret" env:"JWT_SECRET"`
	CookieName       string `yaml:"cookie_name" env:"COOKIE_NAME"`
	ClientOrigin     string `yaml:"client_origin" env:"CLIENT_ORIGIN"`
	AllowFixedAnswer bool   `yaml:"allow_fixed_answer" env:"WORDLE_ALLOW_FIXED_ANSWER"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WordLength:   game.DefaultWordLength,
		MaxAttempts:  game.DefaultMaxAttempts,
		Policy:       game.DefaultPolicy.String(),
		DailySalt:    "local_dev_salt",
		Port:         "5175",
		LogLevel:     "info",
		JWTSecret:    "dev_secret_change_me",
		CookieName:   "wordle_game",
		ClientOrigin: "http://localhost:5173",
	}
}

// Load builds a Config from defaults, the YAML file at path (if non-empty),
// and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no session could be built with.
func (c Config) Validate() error {
	if c.WordLength <= 0 {
		return fmt.Errorf("word length must be positive, got %d", c.WordLength)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts)
	}
	if _, err := game.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if c.JWTSecret == "" {
		return errors.New("jwt secret must not be empty")
	}
	return nil
}

// DuplicatePolicy returns the parsed Policy; Validate has already checked it.
func (c Config) DuplicatePolicy() game.DuplicatePolicy {
	p, _ := game.ParsePolicy(c.Policy)
	return p
}
