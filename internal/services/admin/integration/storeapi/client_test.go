package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	apperrors "github.com/louisbranch/megamix/internal/platform/errors"
	"github.com/louisbranch/megamix/internal/storefront"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   string
}

type fakeStore struct {
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeStore(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) (*fakeStore, *httptest.Server) {
	t.Helper()
	fs := &fakeStore{routes: routes}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(raw))
		fs.mu.Lock()
		fs.requests = append(fs.requests, recordedRequest{method: r.Method, path: r.URL.Path, auth: r.Header.Get("Authorization"), body: string(raw)})
		fs.mu.Unlock()

		handler, ok := fs.routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return fs, srv
}

func writeJSON(v any) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeRaw(status int, body string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	c, err := New(baseURL, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNewRejectsRelativeURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "fakestoreapi.com", "ftp://host"} {
		if _, err := New(raw); err == nil {
			t.Fatalf("New(%q) expected error", raw)
		}
	}
}

func TestListProductsSendsBearerAndDecodes(t *testing.T) {
	t.Parallel()

	fs, srv := newFakeStore(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/products": writeJSON([]storefront.Product{{ID: 1, Title: "Backpack", Price: 109.95}}),
	})
	c := newTestClient(t, srv.URL+"/api/")

	products, err := c.ListProducts(context.Background(), "tok")
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) != 1 || products[0].Title != "Backpack" {
		t.Fatalf("products = %+v", products)
	}
	if got := fs.requests[0].auth; got != "Bearer tok" {
		t.Fatalf("Authorization = %q", got)
	}
}

func TestGetTreatsNullBodyAsNotFound(t *testing.T) {
	t.Parallel()

	_, srv := newFakeStore(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /products/99": writeRaw(http.StatusOK, "null"),
		"GET /carts/99":    writeRaw(http.StatusOK, ""),
	})
	c := newTestClient(t, srv.URL)

	if _, err := c.GetProduct(context.Background(), "tok", 99); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("GetProduct() error = %v, want NOT_FOUND", err)
	}
	if _, err := c.GetCart(context.Background(), "tok", 99); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("GetCart() error = %v, want NOT_FOUND", err)
	}
}

func TestStatusAndDecodeFailures(t *testing.T) {
	t.Parallel()

	_, srv := newFakeStore(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /products":    writeRaw(http.StatusInternalServerError, "oops"),
		"GET /carts":       writeRaw(http.StatusOK, "{not json"),
		"GET /users":       writeRaw(http.StatusBadRequest, "bad"),
		"DELETE /users/3":  writeRaw(http.StatusNotFound, ""),
		"DELETE /carts/3":  writeJSON(storefront.Cart{ID: 3}),
		"GET /users/7":     writeRaw(http.StatusForbidden, ""),
		"DELETE /products": writeRaw(http.StatusOK, ""),
	})
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want apperrors.Code
	}{
		{name: "server error", call: func() error { _, err := c.ListProducts(ctx, "t"); return err }, want: apperrors.CodeStoreUnavailable},
		{name: "bad json", call: func() error { _, err := c.ListCarts(ctx, "t"); return err }, want: apperrors.CodeStoreDecode},
		{name: "rejected", call: func() error { _, err := c.ListUsers(ctx, "t"); return err }, want: apperrors.CodeStoreRejected},
		{name: "missing delete", call: func() error { return c.RemoveUser(ctx, "t", 3) }, want: apperrors.CodeNotFound},
		{name: "forbidden", call: func() error { _, err := c.GetUser(ctx, "t", 7); return err }, want: apperrors.CodeUnauthenticated},
		{name: "delete ok", call: func() error { return c.RemoveCart(ctx, "t", 3) }, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := apperrors.GetCode(tc.call()); got != tc.want {
				t.Fatalf("code = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnreachableStoreIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := newTestClient(t, srv.URL)
	if _, err := c.ListProducts(context.Background(), "t"); !apperrors.HasCode(err, apperrors.CodeStoreUnavailable) {
		t.Fatalf("ListProducts() error = %v", err)
	}
}

func TestTimeoutIsUnavailable(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := newTestClient(t, srv.URL, WithTimeout(20*time.Millisecond))
	if _, err := c.ListUsers(context.Background(), "t"); !apperrors.HasCode(err, apperrors.CodeStoreUnavailable) {
		t.Fatalf("ListUsers() error = %v", err)
	}
}

func TestUpdateCartSendsIDAndDate(t *testing.T) {
	t.Parallel()

	fs, srv := newFakeStore(t, map[string]func(http.ResponseWriter, *http.Request){
		"PUT /carts/42": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(storefront.Cart{ID: 42, UserID: 3})(w, r)
		},
	})
	c := newTestClient(t, srv.URL)
	cart := storefront.Cart{UserID: 3, Date: "2026-10-16", Products: []storefront.LineItem{{ProductID: 7, Quantity: 2}}}
	if _, err := c.Carts("tok").Update(context.Background(), 42, cart); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var sent storefront.Cart
	if err := json.Unmarshal([]byte(fs.requests[0].body), &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if sent.ID != 42 || sent.Date != "2026-10-16" || len(sent.Products) != 1 || sent.Products[0].ProductID != 7 {
		t.Fatalf("sent = %+v", sent)
	}
	if !strings.Contains(fs.requests[0].body, `"userId":3`) {
		t.Fatalf("body = %s", fs.requests[0].body)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	_, srv := newFakeStore(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /auth/login": func(w http.ResponseWriter, r *http.Request) {
			var creds storefront.Credentials
			_ = json.NewDecoder(r.Body).Decode(&creds)
			if creds.Username != "mor_2314" || creds.Password != "83r5^_" {
				http.Error(w, "username or password is incorrect", http.StatusUnauthorized)
				return
			}
			writeJSON(map[string]string{"token": "jwt-token"})(w, r)
		},
	})
	c := newTestClient(t, srv.URL)

	token, err := c.Login(context.Background(), storefront.Credentials{Username: "mor_2314", Password: "83r5^_"})
	if err != nil || token != "jwt-token" {
		t.Fatalf("Login() = %q, %v", token, err)
	}
	_, err = c.Login(context.Background(), storefront.Credentials{Username: "mor_2314", Password: "nope"})
	if !apperrors.HasCode(err, apperrors.CodeInvalidCredentials) {
		t.Fatalf("Login() error = %v, want INVALID_CREDENTIALS", err)
	}
}

func TestSummaryCountsConcurrently(t *testing.T) {
	t.Parallel()

	_, srv := newFakeStore(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /products":            writeJSON([]storefront.Product{{ID: 1}, {ID: 2}, {ID: 3}}),
		"GET /products/categories": writeJSON([]string{"electronics", "jewelery"}),
		"GET /carts":               writeJSON([]storefront.Cart{{ID: 1}}),
		"GET /users":               writeJSON([]storefront.User{{ID: 1}, {ID: 2}}),
	})
	c := newTestClient(t, srv.URL)

	got, err := c.Summary(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	want := storefront.Summary{Products: 3, Categories: 2, Carts: 1, Users: 2}
	if got != want {
		t.Fatalf("Summary() = %+v, want %+v", got, want)
	}
}

func TestSummaryFailsOnFirstError(t *testing.T) {
	t.Parallel()

	_, srv := newFakeStore(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /products":            writeJSON([]storefront.Product{{ID: 1}}),
		"GET /products/categories": writeJSON([]string{"a"}),
		"GET /carts":               writeRaw(http.StatusBadGateway, ""),
		"GET /users":               writeJSON([]storefront.User{}),
	})
	c := newTestClient(t, srv.URL)
	if _, err := c.Summary(context.Background(), "tok"); err == nil {
		t.Fatal("expected summary error")
	}
}

func TestSpansNameResourceAndStatus(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, srv := newFakeStore(t, map[string]func(http.ResponseWriter, *http.Request){
		"DELETE /products/5": writeJSON(storefront.Product{ID: 5}),
	})
	c := newTestClient(t, srv.URL, WithTracerProvider(tp))
	if err := c.Products("tok").Remove(context.Background(), 5); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if spans[0].Name() != "storeapi.Products.Remove" {
		t.Fatalf("span name = %q", spans[0].Name())
	}
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["http.route"] != "/products/{id}" || attrs["http.status_code"] != "200" || attrs["http.method"] != "DELETE" {
		t.Fatalf("attributes = %v", attrs)
	}
}
