package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"MEGAMIX_TEST_PORT" envDefault:"123"`
	Timeout time.Duration `env:"MEGAMIX_TEST_TIMEOUT" envDefault:"2s"`
}

type validatedConfig struct {
	Name string `env:"MEGAMIX_TEST_NAME"`
}

func (c validatedConfig) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("expected default timeout 2s, got %v", cfg.Timeout)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MEGAMIX_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromUsesSuppliedMap(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{"MEGAMIX_TEST_PORT": "9000", "MEGAMIX_TEST_TIMEOUT": "750ms"})
	if err != nil {
		t.Fatalf("parse env from map: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("port = %d, want 9000", cfg.Port)
	}
	if cfg.Timeout != 750*time.Millisecond {
		t.Fatalf("timeout = %v, want 750ms", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := Validate(&envTestConfig{}); err != nil {
		t.Fatalf("expected configs without Validate to pass, got %v", err)
	}
	if err := Validate(validatedConfig{}); err == nil {
		t.Fatal("expected validation error")
	}
	if err := Validate(validatedConfig{Name: "admin"}); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
