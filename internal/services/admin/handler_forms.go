package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"

	apperrors "github.com/louisbranch/megamix/internal/platform/errors"
	"github.com/louisbranch/megamix/internal/services/admin/editor"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/render"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/services/admin/screens"
	"github.com/louisbranch/megamix/internal/services/admin/storage"
	"github.com/louisbranch/megamix/internal/services/admin/templates"
)

// fieldEditor is a form whose fields are all set from raw text.
type fieldEditor interface {
	Open(ctx context.Context) error
	SetField(name, raw string) error
	Submit(ctx context.Context) (editor.Outcome, error)
	Mode() editor.Mode
	ID() int
}

type formScreen[E fieldEditor] struct {
	editor  E
	notices *notice.Recorder
}

// formResource describes how one entity form is served.
type formResource[E fieldEditor] struct {
	resource  string
	listPath  string
	fields    []string
	newEditor func(h *Handler, token string, notices notice.Sink, id int) E
	view      func(page templates.PageContext, screenID string, ed E) templates.FormView
}

// serveFormNew opens an empty create form.
func serveFormNew[E fieldEditor](h *Handler, w http.ResponseWriter, r *http.Request, res formResource[E]) {
	openForm(h, w, r, res, 0)
}

// serveFormEdit opens the form for the entity named by the id parameter.
func serveFormEdit[E fieldEditor](h *Handler, w http.ResponseWriter, r *http.Request, res formResource[E]) {
	id := entityID(r.URL.Query())
	if id == 0 {
		http.NotFound(w, r)
		return
	}
	openForm(h, w, r, res, id)
}

func openForm[E fieldEditor](h *Handler, w http.ResponseWriter, r *http.Request, res formResource[E], id int) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	loc, _ := h.localizer(w, r)
	token := sessionToken(r)
	notices := &notice.Recorder{}
	screen := &formScreen[E]{editor: res.newEditor(h, token, notices, id), notices: notices}
	screenID, err := h.screens.Open(token, screen)
	if err != nil {
		log.Printf("open %s form screen: %v", res.resource, err)
		http.Error(w, loc.Sprintf("error.unknown"), http.StatusInternalServerError)
		return
	}
	if err := screen.editor.Open(r.Context()); err != nil {
		logStoreError("open "+res.resource, err)
	}
	renderForm(h, w, r, res, screenID, screen, http.StatusOK)
}

// serveFormField applies one live field edit and answers with that field's
// messages.
func serveFormField[E fieldEditor](h *Handler, w http.ResponseWriter, r *http.Request, res formResource[E]) {
	loc, tag := h.localizer(w, r)
	if !requirePost(w, r, loc) {
		return
	}
	screenID := r.PostForm.Get(routepath.ParamScreen)
	screen, ok := screens.Lookup[*formScreen[E]](h.screens, screenID, sessionToken(r))
	if !ok {
		h.screenExpired(w, r, res.listPath)
		return
	}
	name := r.Form.Get(routepath.ParamField)
	if err := screen.editor.SetField(name, r.PostForm.Get(name)); err != nil && !errors.Is(err, editor.ErrSubmitInProgress) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	page := fragmentContext(loc, tag, screen.notices.Drain())
	view := res.view(page, screenID, screen.editor)
	field := templates.FieldView{Loc: loc, Name: name}
	for _, candidate := range view.Fields {
		if candidate.Name == name {
			field = candidate
			break
		}
	}
	render.Fragment(w, r, templates.FieldErrors(templates.FieldErrorsView{Page: page, Field: field}))
}

// serveFormSubmit applies every posted field and submits the draft. Edits
// that succeed leave the form; creates stay on a reset form.
func serveFormSubmit[E fieldEditor](h *Handler, w http.ResponseWriter, r *http.Request, res formResource[E]) {
	loc, _ := h.localizer(w, r)
	if !requirePost(w, r, loc) {
		return
	}
	screenID := r.PostForm.Get(routepath.ParamScreen)
	screen, ok := screens.Lookup[*formScreen[E]](h.screens, screenID, sessionToken(r))
	if !ok {
		h.screenExpired(w, r, res.listPath)
		return
	}

	var (
		outcome editor.Outcome
		err     = applyFields(screen.editor.SetField, r.PostForm, res.fields)
	)
	if err == nil {
		outcome, err = screen.editor.Submit(r.Context())
	}
	if remoteAttempted(err) {
		logStoreError("submit "+res.resource, err)
		h.recordActivity(r.Context(), res.resource, mutationAction(screen.editor.Mode()), screen.editor.ID(), err)
	}
	if err == nil && outcome.Navigate != "" {
		h.screens.Close(screenID)
		navigate(w, r, outcome.Navigate, screen.notices.Drain())
		return
	}
	renderForm(h, w, r, res, screenID, screen, statusFor(err))
}

func renderForm[E fieldEditor](h *Handler, w http.ResponseWriter, r *http.Request, res formResource[E], screenID string, screen *formScreen[E], status int) {
	loc, tag := h.localizer(w, r)
	page := h.pageContext(w, r, loc, tag, "", screen.notices.Drain()...)
	view := res.view(page, screenID, screen.editor)
	view.Page.Title = loc.Sprintf(view.HeadingKey)
	render.Page(w, r, templates.FormPage(view), view.Page.Title, status)
}

// applyFields copies the posted values of fields into the draft.
func applyFields(set func(name, raw string) error, values url.Values, fields []string) error {
	for _, name := range fields {
		if _, ok := values[name]; !ok {
			continue
		}
		if err := set(name, values.Get(name)); err != nil {
			return err
		}
	}
	return nil
}

// remoteAttempted reports whether a submit reached the storefront API.
func remoteAttempted(err error) bool {
	if err == nil {
		return true
	}
	return !apperrors.HasCode(err, apperrors.CodeValidation) &&
		!apperrors.HasCode(err, apperrors.CodeSubmitInProgress)
}

func mutationAction(mode editor.Mode) string {
	if mode == editor.ModeEdit {
		return storage.ActionUpdate
	}
	return storage.ActionCreate
}

func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return apperrors.GetCode(err).HTTPStatus()
}
