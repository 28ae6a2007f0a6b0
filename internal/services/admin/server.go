package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/currency"

	platformcmd "github.com/louisbranch/megamix/internal/platform/cmd"
	"github.com/louisbranch/megamix/internal/platform/timeouts"
	adminstorage "github.com/louisbranch/megamix/internal/services/admin/integration/storage"
	"github.com/louisbranch/megamix/internal/services/admin/integration/storeapi"
	"github.com/louisbranch/megamix/internal/services/admin/screens"
	adminsqlite "github.com/louisbranch/megamix/internal/services/admin/storage/sqlite"
)

// Config defines the inputs for the admin console process.
type Config struct {
	HTTPAddr string
	// StoreURL is the base URL of the FakeStore-compatible API.
	StoreURL     string
	DBPath       string
	StoreTimeout time.Duration
	ScreenTTL    time.Duration
	// Currency is an ISO 4217 code used to display prices.
	Currency string
}

// Server hosts the admin console.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	adminStore *adminsqlite.Store
}

// NewServer builds a configured admin server.
func NewServer(_ context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.StoreTimeout <= 0 {
		config.StoreTimeout = timeouts.StoreRequest
	}
	if config.ScreenTTL <= 0 {
		config.ScreenTTL = timeouts.ScreenTTL
	}
	unit, err := parseCurrency(config.Currency)
	if err != nil {
		return nil, err
	}

	store, err := storeapi.New(config.StoreURL, storeapi.WithTimeout(config.StoreTimeout))
	if err != nil {
		return nil, fmt.Errorf("init store client: %w", err)
	}

	adminStore, err := adminstorage.OpenStore(config.DBPath)
	if err != nil {
		return nil, err
	}

	handler := NewHandler(HandlerConfig{
		Store:    store,
		Storage:  adminStore,
		Screens:  screens.NewRegistry(config.ScreenTTL),
		Currency: unit,
	})
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		adminStore: adminStore,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	return platformcmd.ServeHTTP(ctx, platformcmd.ServiceAdmin, s.httpServer)
}

// Close releases the local store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.adminStore != nil {
		if err := s.adminStore.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func parseCurrency(code string) (currency.Unit, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return currency.BRL, nil
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return unit, nil
}
