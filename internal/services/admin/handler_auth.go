package admin

import (
	"context"
	"log"
	"net/http"

	"github.com/louisbranch/megamix/internal/platform/id"
	"github.com/louisbranch/megamix/internal/services/admin/editor"
	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/render"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/services/admin/session"
	"github.com/louisbranch/megamix/internal/services/admin/storage"
	"github.com/louisbranch/megamix/internal/services/admin/templates"
)

// handleLogin renders the sign-in form and processes credentials.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	loc, tag := h.localizer(w, r)
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if session.Check(session.ReadToken(r)).Authenticated {
			render.Redirect(w, r, routepath.Root)
			return
		}
		page := h.pageContext(w, r, loc, tag, loc.Sprintf("login.title"))
		view := templates.NewLoginView(page, form.LoginDraft{}, form.NewFieldErrors(form.LoginFields...))
		render.Page(w, r, templates.LoginPage(view), page.Title, http.StatusOK)
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !requirePost(w, r, loc) {
		return
	}

	notices := &notice.Recorder{}
	loginForm := editor.NewLoginForm(h.store, notices, func(token string) {
		session.WriteToken(w, r, token)
	})
	outcome, err := loginForm.Submit(r.Context(), form.LoginDraft{
		Username: r.PostForm.Get(form.FieldUsername),
		Password: r.PostForm.Get(form.FieldPassword),
	})
	if err == nil {
		h.recordLogin(r.Context())
		navigate(w, r, outcome.Navigate, notices.Drain())
		return
	}
	logStoreError("login", err)

	page := h.pageContext(w, r, loc, tag, loc.Sprintf("login.title"), notices.Drain()...)
	view := templates.NewLoginView(page, loginForm.Draft(), loginForm.Errors())
	render.Page(w, r, templates.LoginPage(view), page.Title, http.StatusUnprocessableEntity)
}

// recordLogin audits a successful sign-in. The token itself is never stored.
func (h *Handler) recordLogin(ctx context.Context) {
	if h.storage == nil {
		return
	}
	sessionID, err := id.NewID()
	if err != nil {
		log.Printf("generate login audit id: %v", err)
		return
	}
	if err := h.storage.PutUserSession(context.WithoutCancel(ctx), sessionID, h.now().UTC()); err != nil {
		log.Printf("record login: %v", err)
	}
	h.recordActivity(ctx, resourceSession, storage.ActionLogin, 0, nil)
}

// handleLogout clears the session and every screen opened with it.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requirePost(w, r, loc) {
		return
	}
	if token := session.ReadToken(r); token != "" {
		h.screens.CloseToken(token)
	}
	session.ClearToken(w, r)
	navigate(w, r, routepath.Login, []notice.Notice{{Kind: notice.KindInfo, Key: notice.KeyLoggedOut}})
}
