// Package storestub parses configuration for and runs the development
// storefront API.
package storestub

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	platformcmd "github.com/louisbranch/megamix/internal/platform/cmd"
	"github.com/louisbranch/megamix/internal/platform/config"
	"github.com/louisbranch/megamix/internal/platform/timeouts"
	"github.com/louisbranch/megamix/internal/services/storestub"
)

// devSecret signs tokens when -insecure-dev-secret is set.
const devSecret = "megamix-dev-secret"

// Config holds the stub command configuration.
type Config struct {
	HTTPAddr    string `env:"MEGAMIX_STORESTUB_HTTP_ADDR" envDefault:":8090"`
	JWTSecret   string `env:"MEGAMIX_STORESTUB_JWT_SECRET"`
	RequireAuth bool   `env:"MEGAMIX_STORESTUB_REQUIRE_AUTH" envDefault:"false"`
	// InsecureDevSecret falls back to a fixed secret when none is configured.
	InsecureDevSecret bool
}

// Validate checks the parsed values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return errors.New("http address is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" && !c.InsecureDevSecret {
		return errors.New("MEGAMIX_STORESTUB_JWT_SECRET is required (or pass -insecure-dev-secret)")
	}
	return nil
}

// secret returns the signing key, falling back to the dev secret when allowed.
func (c Config) secret() []byte {
	if value := strings.TrimSpace(c.JWTSecret); value != "" {
		return []byte(value)
	}
	return []byte(devSecret)
}

// ParseConfig reads environment defaults, then flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.BoolVar(&cfg.RequireAuth, "require-auth", cfg.RequireAuth, "require a bearer token on every route but login")
	fs.BoolVar(&cfg.InsecureDevSecret, "insecure-dev-secret", false, "sign tokens with a fixed development secret")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := config.Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the stub API.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceStoreStub, func(ctx context.Context) error {
		if strings.TrimSpace(cfg.JWTSecret) == "" {
			log.Printf("storestub using the insecure development secret")
		}
		stub, err := storestub.New(storestub.Config{
			Secret:      cfg.secret(),
			RequireAuth: cfg.RequireAuth,
		})
		if err != nil {
			return fmt.Errorf("init storestub: %w", err)
		}
		server := &http.Server{
			Addr:              strings.TrimSpace(cfg.HTTPAddr),
			Handler:           stub,
			ReadHeaderTimeout: timeouts.ReadHeader,
		}
		return platformcmd.ServeHTTP(ctx, platformcmd.ServiceStoreStub, server)
	})
}
