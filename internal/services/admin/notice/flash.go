package notice

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/louisbranch/megamix/internal/platform/requestmeta"
)

// CookieName carries pending notices across a redirect.
const CookieName = "megamix_flash"

// maxFlashNotices bounds the cookie payload.
const maxFlashNotices = 8

// WriteFlash stores notices in a cookie for the next page render. Notices
// already pending on the request are kept ahead of the new ones.
func WriteFlash(w http.ResponseWriter, r *http.Request, notices ...Notice) {
	if w == nil {
		return
	}
	pending := normalize(append(readFlash(r), notices...))
	if len(pending) == 0 {
		return
	}
	if len(pending) > maxFlashNotices {
		pending = pending[len(pending)-maxFlashNotices:]
	}
	payload, err := json.Marshal(pending)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClearFlash returns pending notices and expires the cookie.
func ReadAndClearFlash(w http.ResponseWriter, r *http.Request) []Notice {
	notices := readFlash(r)
	if len(notices) == 0 {
		return nil
	}
	if w != nil {
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
	return notices
}

func readFlash(r *http.Request) []Notice {
	if r == nil {
		return nil
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return nil
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var notices []Notice
	if err := json.Unmarshal(decoded, &notices); err != nil {
		return nil
	}
	return normalize(notices)
}

func normalize(notices []Notice) []Notice {
	out := make([]Notice, 0, len(notices))
	for _, n := range notices {
		n.Key = strings.TrimSpace(n.Key)
		n.Kind = Kind(strings.ToLower(strings.TrimSpace(string(n.Kind))))
		if n.Key == "" {
			continue
		}
		switch n.Kind {
		case KindSuccess, KindInfo, KindWarning, KindError:
			out = append(out, n)
		}
	}
	return out
}
