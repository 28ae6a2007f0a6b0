// Package render writes admin pages for full loads and htmx swaps.
package render

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeader marks requests issued by htmx.
const RequestHeader = "HX-Request"

// IsHTMX reports whether the request was initiated by htmx.
func IsHTMX(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(RequestHeader)), "true")
}

// Page renders full for normal requests. htmx requests get only the inner
// content of <main>, prefixed with a <title> so the tab title follows.
func Page(w http.ResponseWriter, r *http.Request, full templ.Component, title string, status int) {
	if full == nil {
		return
	}
	if status == 0 {
		status = http.StatusOK
	}
	if !IsHTMX(r) {
		templ.Handler(full, templ.WithStatus(status)).ServeHTTP(w, r)
		return
	}

	var buf bytes.Buffer
	if err := full.Render(r.Context(), &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	body := buf.Bytes()
	if inner, ok := mainContent(body); ok {
		body = inner
	}
	if tag := titleTag(title); tag != "" && !bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		body = append([]byte(tag), body...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// htmx does not swap error responses by default.
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Fragment renders a partial component as is.
func Fragment(w http.ResponseWriter, r *http.Request, component templ.Component) {
	if component == nil {
		return
	}
	templ.Handler(component).ServeHTTP(w, r)
}

// Redirect navigates to target. htmx requests get HX-Redirect on a 200 so the
// browser does not follow a 3xx inside the XHR.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Retarget makes htmx swap the response into selector instead of the
// element that issued the request.
func Retarget(w http.ResponseWriter, selector, swap string) {
	w.Header().Set("HX-Retarget", selector)
	if swap != "" {
		w.Header().Set("HX-Reswap", swap)
	}
}

func titleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

func mainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openEnd := bytes.IndexByte(body[start:], '>')
	if openEnd < 0 {
		return nil, false
	}
	contentStart := start + openEnd + 1
	end := bytes.LastIndex(body, []byte("</main>"))
	if end < contentStart {
		return nil, false
	}
	return body[contentStart:end], true
}
