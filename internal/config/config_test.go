package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// These tests touch the process environment, so none run in parallel.

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WordLength != 5 || cfg.MaxAttempts != 6 || cfg.Port != "5175" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DuplicatePolicy() != game.PolicyContainment {
		t.Fatalf("policy = %v", cfg.DuplicatePolicy())
	}
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	body := "max_attempts: 8\npolicy: budget\nport: \"9000\"\nallowed_file: /tmp/words.txt\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PORT", "7000")
	t.Setenv("WORDLE_ALLOW_FIXED_ANSWER", "true")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxAttempts != 8 || cfg.AllowedFile != "/tmp/words.txt" {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if cfg.Port != "7000" || !cfg.AllowFixedAnswer {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.DuplicatePolicy() != game.PolicyLetterBudget {
		t.Fatalf("policy = %v", cfg.DuplicatePolicy())
	}
	if cfg.WordLength != 5 {
		t.Fatalf("unset field lost its default: %d", cfg.WordLength)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WORDLE_POLICY", "strict")
	if _, err := config.Load(""); err == nil {
		t.Fatalf("unknown policy should fail")
	}

	t.Setenv("WORDLE_POLICY", "budget")
	t.Setenv("WORDLE_MAX_ATTEMPTS", "0")
	if _, err := config.Load(""); err == nil {
		t.Fatalf("zero attempts should fail")
	}

	t.Setenv("WORDLE_MAX_ATTEMPTS", "six")
	if _, err := config.Load(""); err == nil {
		t.Fatalf("non-numeric attempts should fail")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("missing config file should fail")
	}
}
