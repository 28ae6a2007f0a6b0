// Package storestub serves an in-memory FakeStore-compatible API for local
// development and tests of the admin console.
package storestub

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/louisbranch/megamix/internal/storefront"
)

const (
	loginPath    = "/auth/login"
	maxBodyBytes = 1 << 20
)

// Config configures a stub server.
type Config struct {
	// Secret signs login tokens. Required.
	Secret []byte
	// RequireAuth makes every route but login demand a valid bearer token.
	RequireAuth bool
	// Fixtures seeds the collections. The embedded defaults are used when nil.
	Fixtures *Fixtures
	Now      func() time.Time
}

// Server is the stub API. It is safe for concurrent use.
type Server struct {
	secret   []byte
	now      func() time.Time
	products *collection[storefront.Product]
	carts    *collection[storefront.Cart]
	users    *collection[storefront.User]
	handler  http.Handler
}

// New builds a stub server from cfg.
func New(cfg Config) (*Server, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("jwt secret is required")
	}
	fixtures := cfg.Fixtures
	if fixtures == nil {
		defaults, err := DefaultFixtures()
		if err != nil {
			return nil, err
		}
		fixtures = &defaults
	}
	s := &Server{
		secret:   cfg.Secret,
		now:      cfg.Now,
		products: newCollection(fixtures.Products, productWithID),
		carts:    newCollection(fixtures.Carts, cartWithID),
		users:    newCollection(fixtures.Users, userWithID),
	}
	if s.now == nil {
		s.now = time.Now
	}

	router := mux.NewRouter()
	router.HandleFunc(loginPath, s.handleLogin).Methods(http.MethodPost)
	router.HandleFunc("/products/categories", s.handleCategories).Methods(http.MethodGet)
	mountResource(router, "/products", s.products)
	mountResource(router, "/carts", s.carts)
	mountResource(router, "/users", s.users)
	if cfg.RequireAuth {
		router.Use(s.requireAuth)
	}
	s.handler = router
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func mountResource[T record](router *mux.Router, prefix string, items *collection[T]) {
	item := prefix + "/{id:[0-9]+}"
	router.HandleFunc(prefix, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, items.list())
	}).Methods(http.MethodGet)
	router.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		var value T
		if err := decodeBody(r, &value); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, items.create(value))
	}).Methods(http.MethodPost)
	router.HandleFunc(item, func(w http.ResponseWriter, r *http.Request) {
		value, ok := items.get(pathID(r))
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, value)
	}).Methods(http.MethodGet)
	router.HandleFunc(item, func(w http.ResponseWriter, r *http.Request) {
		patch, err := readBody(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		value, ok, err := items.update(pathID(r), patch)
		switch {
		case !ok:
			http.NotFound(w, r)
		case err != nil:
			http.Error(w, "invalid body", http.StatusBadRequest)
		default:
			writeJSON(w, http.StatusOK, value)
		}
	}).Methods(http.MethodPut, http.MethodPatch)
	router.HandleFunc(item, func(w http.ResponseWriter, r *http.Request) {
		value, ok := items.remove(pathID(r))
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, value)
	}).Methods(http.MethodDelete)
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	categories := []string{}
	for _, p := range s.products.list() {
		if p.Category != "" && !slices.Contains(categories, p.Category) {
			categories = append(categories, p.Category)
		}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds storefront.Credentials
	if err := decodeBody(r, &creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(creds.Username)
	user, ok := s.users.find(func(u storefront.User) bool {
		return u.Username == username && u.Password == creds.Password
	})
	if username == "" || !ok {
		http.Error(w, "username or password is incorrect", http.StatusUnauthorized)
		return
	}
	token, err := s.issueToken(user.ID)
	if err != nil {
		log.Printf("storestub login: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func pathID(r *http.Request) int {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0
	}
	return id
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.New("read body")
	}
	if !json.Valid(body) {
		return nil, errors.New("invalid json body")
	}
	return body, nil
}

func decodeBody(r *http.Request, out any) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.New("invalid body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.Printf("storestub encode response: %v", err)
	}
}
