package storestub

import (
	"flag"
	"testing"
)

func TestParseConfigRequiresSecret(t *testing.T) {
	t.Setenv("MEGAMIX_STORESTUB_JWT_SECRET", "")

	fs := flag.NewFlagSet("storestub", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected missing secret error")
	}
}

func TestParseConfigInsecureDevSecret(t *testing.T) {
	t.Setenv("MEGAMIX_STORESTUB_JWT_SECRET", "")
	t.Setenv("MEGAMIX_STORESTUB_HTTP_ADDR", "")

	fs := flag.NewFlagSet("storestub", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-insecure-dev-secret"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != ":8090" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if string(cfg.secret()) != devSecret {
		t.Fatalf("secret = %q, want dev secret", cfg.secret())
	}
}

func TestParseConfigFromEnv(t *testing.T) {
	t.Setenv("MEGAMIX_STORESTUB_JWT_SECRET", "s3cret")
	t.Setenv("MEGAMIX_STORESTUB_REQUIRE_AUTH", "true")
	t.Setenv("MEGAMIX_STORESTUB_HTTP_ADDR", "127.0.0.1:9999")

	fs := flag.NewFlagSet("storestub", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if !cfg.RequireAuth {
		t.Fatal("expected RequireAuth from env")
	}
	if cfg.HTTPAddr != "127.0.0.1:9999" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if string(cfg.secret()) != "s3cret" {
		t.Fatalf("secret = %q", cfg.secret())
	}
}
