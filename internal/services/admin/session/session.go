// Package session guards operator-only screens behind the storefront token.
package session

import (
	"net/http"
	"strings"

	"github.com/louisbranch/megamix/internal/platform/requestctx"
	"github.com/louisbranch/megamix/internal/platform/requestmeta"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/render"
)

// CookieName stores the storefront token issued at login.
const CookieName = "megamix_session"

// Status is the result of a session check.
type Status struct {
	Authenticated bool
	Token         string
}

// Check reports whether token represents a logged-in operator. Any non-empty
// token counts; whitespace-only values do not.
func Check(token string) Status {
	token = strings.TrimSpace(token)
	if token == "" {
		return Status{}
	}
	return Status{Authenticated: true, Token: token}
}

// ReadToken returns the trimmed session token from the request cookie.
func ReadToken(r *http.Request) string {
	if r == nil {
		return ""
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

// WriteToken sets the session cookie.
func WriteToken(w http.ResponseWriter, r *http.Request, token string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    strings.TrimSpace(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearToken expires the session cookie.
func ClearToken(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Guard redirects unauthenticated requests to the login screen.
type Guard struct {
	LoginPath string
	// Exempt lists path prefixes served without a session.
	Exempt []string
}

// Require wraps next so it only runs for authenticated operators. Rejected
// requests get a login_required warning and a redirect; next is never called.
func (g Guard) Require(next http.Handler) http.Handler {
	loginPath := g.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.exempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		status := Check(ReadToken(r))
		if !status.Authenticated {
			notice.WriteFlash(w, r, notice.Notice{Kind: notice.KindWarning, Key: notice.KeyLoginRequired})
			render.Redirect(w, r, loginPath)
			return
		}
		ctx := requestctx.WithSessionToken(r.Context(), status.Token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g Guard) exempt(path string) bool {
	for _, prefix := range g.Exempt {
		if prefix == "" {
			continue
		}
		if strings.HasSuffix(prefix, "/") {
			if strings.HasPrefix(path, prefix) {
				return true
			}
			continue
		}
		if path == prefix {
			return true
		}
	}
	return false
}
