package admin

import (
	"log"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/louisbranch/megamix/internal/services/admin/listsync"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/render"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/services/admin/screens"
	"github.com/louisbranch/megamix/internal/services/admin/storage"
	"github.com/louisbranch/megamix/internal/services/admin/templates"
	"golang.org/x/text/language"
)

// listScreen is one open list page. Notices raised by the synchronizer wait
// in the recorder until the next response drains them.
type listScreen[T listsync.Keyed] struct {
	rows    *listsync.Synchronizer[T]
	notices *notice.Recorder
}

// listResource describes how one resource list is served.
type listResource[T listsync.Keyed] struct {
	resource   string
	listPath   string
	tablePath  string
	tableID    string
	headingKey string
	newPath    string
	newKey     string
	messages   listsync.Messages
	source     func(h *Handler, token string) listsync.Source[T]
	table      func(h *Handler, page templates.PageContext, tag language.Tag, screenID string, rows *listsync.Synchronizer[T]) templ.Component
}

// serveListPage opens a list screen and renders its shell. The table loads
// with a follow-up request.
func serveListPage[T listsync.Keyed](h *Handler, w http.ResponseWriter, r *http.Request, res listResource[T]) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	loc, tag := h.localizer(w, r)
	token := sessionToken(r)
	notices := &notice.Recorder{}
	screen := &listScreen[T]{
		rows:    listsync.New(res.source(h, token), notices, res.messages),
		notices: notices,
	}
	screenID, err := h.screens.Open(token, screen)
	if err != nil {
		log.Printf("open %s screen: %v", res.resource, err)
		http.Error(w, loc.Sprintf("error.unknown"), http.StatusInternalServerError)
		return
	}

	page := h.pageContext(w, r, loc, tag, loc.Sprintf(res.headingKey))
	render.Page(w, r, templates.ListPage(templates.ListView{
		Page:       page,
		HeadingKey: res.headingKey,
		NewURL:     res.newPath,
		NewKey:     res.newKey,
		TableID:    res.tableID,
		TableURL:   res.tablePath + "?" + url.Values{routepath.ParamScreen: {screenID}}.Encode(),
	}), page.Title, http.StatusOK)
}

// serveListTable loads the screen's rows once and renders the table.
func serveListTable[T listsync.Keyed](h *Handler, w http.ResponseWriter, r *http.Request, res listResource[T]) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	screenID := r.URL.Query().Get(routepath.ParamScreen)
	screen, ok := screens.Lookup[*listScreen[T]](h.screens, screenID, sessionToken(r))
	if !ok {
		h.screenExpired(w, r, res.listPath)
		return
	}
	if err := screen.rows.Load(r.Context()); err != nil {
		logStoreError("load "+res.resource, err)
	}
	renderListTable(h, w, r, res, screenID, screen)
}

// serveListDelete removes one row after the remote authority confirms it.
func serveListDelete[T listsync.Keyed](h *Handler, w http.ResponseWriter, r *http.Request, res listResource[T]) {
	loc, _ := h.localizer(w, r)
	if !requirePost(w, r, loc) {
		return
	}
	screenID := r.PostForm.Get(routepath.ParamScreen)
	screen, ok := screens.Lookup[*listScreen[T]](h.screens, screenID, sessionToken(r))
	if !ok {
		h.screenExpired(w, r, res.listPath)
		return
	}
	id := entityID(r.PostForm)
	if id == 0 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	err := screen.rows.Delete(r.Context(), id)
	logStoreError("delete "+res.resource, err)
	h.recordActivity(r.Context(), res.resource, storage.ActionDelete, id, err)

	if !render.IsHTMX(r) {
		h.screens.Close(screenID)
		navigate(w, r, res.listPath, screen.notices.Drain())
		return
	}
	renderListTable(h, w, r, res, screenID, screen)
}

func renderListTable[T listsync.Keyed](h *Handler, w http.ResponseWriter, r *http.Request, res listResource[T], screenID string, screen *listScreen[T]) {
	loc, tag := h.localizer(w, r)
	page := fragmentContext(loc, tag, screen.notices.Drain())
	render.Fragment(w, r, res.table(h, page, tag, screenID, screen.rows))
}
