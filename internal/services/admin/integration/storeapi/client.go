// Package storeapi is the HTTP client for the storefront REST API.
package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/megamix/internal/platform/errors"
	"github.com/louisbranch/megamix/internal/platform/timeouts"
)

const tracerName = "github.com/louisbranch/megamix/internal/services/admin/integration/storeapi"

// maxResponseBytes bounds a decoded response body.
const maxResponseBytes = 8 << 20

// Client calls a FakeStore-compatible API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout caps every request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// New builds a client for baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("store url must be absolute http(s): %q", baseURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	c := &Client{
		baseURL: parsed,
		http:    http.DefaultClient,
		timeout: timeouts.StoreRequest,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// call describes one request.
type call struct {
	span   string
	method string
	route  string
	path   string
	token  string
	body   any
	// requireBody treats an empty or null body as a missing record.
	requireBody bool
}

func (c *Client) do(ctx context.Context, in call, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, in.span,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", in.method),
			attribute.String("http.route", in.route),
		),
	)
	defer span.End()

	err := c.roundTrip(ctx, span, in, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, string(apperrors.GetCode(err)))
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, span trace.Span, in call, out any) error {
	var reader io.Reader
	if in.body != nil {
		payload, err := json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", in.route, err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL.JoinPath(in.path)
	req, err := http.NewRequestWithContext(ctx, in.method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", in.route, err)
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := strings.TrimSpace(in.token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStoreUnavailable, in.method+" "+in.route, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if err := statusError(in, resp.StatusCode); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStoreUnavailable, "read "+in.route+" response", err)
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		if in.requireBody {
			return apperrors.New(apperrors.CodeNotFound, in.method+" "+in.route+" returned no record")
		}
		return nil
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return apperrors.Wrap(apperrors.CodeStoreDecode, "decode "+in.route+" response", err)
	}
	return nil
}

func statusError(in call, status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("%s %s returned %d", in.method, in.route, status))
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperrors.New(apperrors.CodeUnauthenticated, fmt.Sprintf("%s %s returned %d", in.method, in.route, status))
	case status >= 400 && status < 500:
		return apperrors.New(apperrors.CodeStoreRejected, fmt.Sprintf("%s %s returned %d", in.method, in.route, status))
	default:
		return apperrors.New(apperrors.CodeStoreUnavailable, fmt.Sprintf("%s %s returned %d", in.method, in.route, status))
	}
}
