// Package admin parses configuration for and runs the admin console process.
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/currency"

	platformcmd "github.com/louisbranch/megamix/internal/platform/cmd"
	"github.com/louisbranch/megamix/internal/platform/config"
	"github.com/louisbranch/megamix/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr     string        `env:"MEGAMIX_ADMIN_HTTP_ADDR" envDefault:":8082"`
	StoreURL     string        `env:"MEGAMIX_ADMIN_STORE_URL" envDefault:"https://fakestoreapi.com"`
	DBPath       string        `env:"MEGAMIX_ADMIN_DB_PATH" envDefault:"data/admin.db"`
	StoreTimeout time.Duration `env:"MEGAMIX_ADMIN_STORE_TIMEOUT" envDefault:"5s"`
	ScreenTTL    time.Duration `env:"MEGAMIX_ADMIN_SCREEN_TTL" envDefault:"30m"`
	Currency     string        `env:"MEGAMIX_ADMIN_CURRENCY" envDefault:"BRL"`
}

// Validate checks the parsed values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return errors.New("http address is required")
	}
	parsed, err := url.Parse(strings.TrimSpace(c.StoreURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("store url must be an absolute http(s) url: %q", c.StoreURL)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db path is required")
	}
	if c.StoreTimeout <= 0 {
		return errors.New("store timeout must be positive")
	}
	if c.ScreenTTL <= 0 {
		return errors.New("screen ttl must be positive")
	}
	if _, err := currency.ParseISO(strings.TrimSpace(c.Currency)); err != nil {
		return fmt.Errorf("currency %q: %w", c.Currency, err)
	}
	return nil
}

// ParseConfig reads environment defaults, then flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StoreURL, "store-url", cfg.StoreURL, "storefront API base URL")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "admin sqlite database path")
	fs.DurationVar(&cfg.StoreTimeout, "store-timeout", cfg.StoreTimeout, "timeout for each storefront call")
	fs.DurationVar(&cfg.ScreenTTL, "screen-ttl", cfg.ScreenTTL, "how long idle screens stay open")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "ISO 4217 code used to display prices")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := config.Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the admin console.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceAdmin, func(ctx context.Context) error {
		server, err := admin.NewServer(ctx, admin.Config{
			HTTPAddr:     cfg.HTTPAddr,
			StoreURL:     cfg.StoreURL,
			DBPath:       cfg.DBPath,
			StoreTimeout: cfg.StoreTimeout,
			ScreenTTL:    cfg.ScreenTTL,
			Currency:     cfg.Currency,
		})
		if err != nil {
			return fmt.Errorf("init admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}
