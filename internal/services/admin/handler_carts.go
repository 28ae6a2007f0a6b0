package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/megamix/internal/services/admin/editor"
	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/listsync"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/render"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/services/admin/screens"
	"github.com/louisbranch/megamix/internal/services/admin/templates"
	"github.com/louisbranch/megamix/internal/storefront"
	"golang.org/x/text/language"
)

var cartList = listResource[storefront.Cart]{
	resource:   resourceCarts,
	listPath:   routepath.Carts,
	tablePath:  routepath.CartsTable,
	tableID:    "carts-table",
	headingKey: "carts.title",
	newPath:    routepath.CartsNew,
	newKey:     "carts.new",
	messages: listsync.Messages{
		FetchFailed:  notice.KeyCartsFetchFailed,
		DeleteFailed: notice.KeyCartDeleteFailed,
		Deleted:      notice.KeyCartDeleted,
	},
	source: func(h *Handler, token string) listsync.Source[storefront.Cart] {
		return h.store.Carts(token)
	},
	table: func(_ *Handler, page templates.PageContext, tag language.Tag, screenID string, rows *listsync.Synchronizer[storefront.Cart]) templ.Component {
		return templates.CartTable(templates.CartTableView{
			Page:     page,
			ScreenID: screenID,
			Rows:     cartRows(rows.Items(), tag),
			Empty:    rows.Empty(),
		})
	},
}

type cartScreen struct {
	editor  *editor.CartEditor
	notices *notice.Recorder
}

func (h *Handler) handleCartsPage(w http.ResponseWriter, r *http.Request) {
	serveListPage(h, w, r, cartList)
}

func (h *Handler) handleCartsTable(w http.ResponseWriter, r *http.Request) {
	serveListTable(h, w, r, cartList)
}

func (h *Handler) handleCartDelete(w http.ResponseWriter, r *http.Request) {
	serveListDelete(h, w, r, cartList)
}

func (h *Handler) handleCartNew(w http.ResponseWriter, r *http.Request) {
	h.openCartForm(w, r, 0)
}

func (h *Handler) handleCartEdit(w http.ResponseWriter, r *http.Request) {
	id := entityID(r.URL.Query())
	if id == 0 {
		http.NotFound(w, r)
		return
	}
	h.openCartForm(w, r, id)
}

func (h *Handler) openCartForm(w http.ResponseWriter, r *http.Request, id int) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	loc, _ := h.localizer(w, r)
	token := sessionToken(r)
	notices := &notice.Recorder{}
	screen := &cartScreen{
		editor:  editor.NewCartEditor(h.store.Carts(token), notices, id, h.now),
		notices: notices,
	}
	screenID, err := h.screens.Open(token, screen)
	if err != nil {
		log.Printf("open cart form screen: %v", err)
		http.Error(w, loc.Sprintf("error.unknown"), http.StatusInternalServerError)
		return
	}
	if err := screen.editor.Open(r.Context()); err != nil {
		logStoreError("open cart", err)
	}
	h.renderCartForm(w, r, screenID, screen, templates.PendingItem{}, http.StatusOK)
}

// cartPost is a cart form submission bound to its open screen.
type cartPost struct {
	screenID string
	screen   *cartScreen
	// err is set when the owner field could not be applied.
	err error
}

// readCartPost validates a cart form post and applies the owner field.
func (h *Handler) readCartPost(w http.ResponseWriter, r *http.Request) (cartPost, bool) {
	loc, _ := h.localizer(w, r)
	if !requirePost(w, r, loc) {
		return cartPost{}, false
	}
	screenID := r.PostForm.Get(routepath.ParamScreen)
	screen, ok := screens.Lookup[*cartScreen](h.screens, screenID, sessionToken(r))
	if !ok {
		h.screenExpired(w, r, routepath.Carts)
		return cartPost{}, false
	}
	err := applyFields(func(_ string, raw string) error {
		return screen.editor.SetUserID(raw)
	}, r.PostForm, []string{form.FieldUserID})
	return cartPost{screenID: screenID, screen: screen, err: err}, true
}

// handleCartField applies a live edit of the owning user id.
func (h *Handler) handleCartField(w http.ResponseWriter, r *http.Request) {
	post, ok := h.readCartPost(w, r)
	if !ok {
		return
	}
	screenID, screen, err := post.screenID, post.screen, post.err
	if name := r.Form.Get(routepath.ParamField); name != form.FieldUserID {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err != nil && !errors.Is(err, editor.ErrSubmitInProgress) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	loc, tag := h.localizer(w, r)
	page := fragmentContext(loc, tag, screen.notices.Drain())
	view := templates.NewCartFormView(page, screenID, false, screen.editor.Draft(), screen.editor.Errors(), screen.editor.ItemErrors(), templates.PendingItem{})
	render.Fragment(w, r, templates.FieldErrors(templates.FieldErrorsView{Page: page, Field: view.UserField}))
}

// handleCartItemAdd validates the add-item sub-form and appends the item.
// Rejected input stays in the sub-form.
func (h *Handler) handleCartItemAdd(w http.ResponseWriter, r *http.Request) {
	post, ok := h.readCartPost(w, r)
	if !ok {
		return
	}
	screenID, screen, err := post.screenID, post.screen, post.err
	pending := templates.PendingItem{
		ProductID: strings.TrimSpace(r.PostForm.Get(form.FieldProductID)),
		Quantity:  strings.TrimSpace(r.PostForm.Get(form.FieldQuantity)),
	}
	if err == nil {
		err = screen.editor.AddItem(pending.ProductID, pending.Quantity)
	}
	if err == nil {
		pending = templates.PendingItem{}
	}
	h.renderCartForm(w, r, screenID, screen, pending, statusFor(err))
}

// handleCartItemRemove drops the line item at the posted index.
func (h *Handler) handleCartItemRemove(w http.ResponseWriter, r *http.Request) {
	post, ok := h.readCartPost(w, r)
	if !ok {
		return
	}
	screenID, screen, err := post.screenID, post.screen, post.err
	if err == nil {
		index, convErr := strconv.Atoi(strings.TrimSpace(r.PostForm.Get(routepath.ParamIndex)))
		if convErr != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		err = screen.editor.RemoveItem(index)
	}
	h.renderCartForm(w, r, screenID, screen, templates.PendingItem{}, statusFor(err))
}

// handleCartSubmit submits the cart with today's date.
func (h *Handler) handleCartSubmit(w http.ResponseWriter, r *http.Request) {
	post, ok := h.readCartPost(w, r)
	if !ok {
		return
	}
	screenID, screen, err := post.screenID, post.screen, post.err
	var outcome editor.Outcome
	if err == nil {
		outcome, err = screen.editor.Submit(r.Context())
	}
	if remoteAttempted(err) {
		logStoreError("submit cart", err)
		h.recordActivity(r.Context(), resourceCarts, mutationAction(screen.editor.Mode()), screen.editor.ID(), err)
	}
	if err == nil && outcome.Navigate != "" {
		h.screens.Close(screenID)
		navigate(w, r, outcome.Navigate, screen.notices.Drain())
		return
	}
	h.renderCartForm(w, r, screenID, screen, templates.PendingItem{}, statusFor(err))
}

func (h *Handler) renderCartForm(w http.ResponseWriter, r *http.Request, screenID string, screen *cartScreen, pending templates.PendingItem, status int) {
	loc, tag := h.localizer(w, r)
	page := h.pageContext(w, r, loc, tag, "", screen.notices.Drain()...)
	view := templates.NewCartFormView(page, screenID, screen.editor.Mode() == editor.ModeEdit, screen.editor.Draft(), screen.editor.Errors(), screen.editor.ItemErrors(), pending)
	view.Page.Title = loc.Sprintf(view.HeadingKey)
	render.Page(w, r, templates.CartFormPage(view), view.Page.Title, status)
}

func cartRows(carts []storefront.Cart, tag language.Tag) []templates.CartRow {
	rows := make([]templates.CartRow, 0, len(carts))
	for _, c := range carts {
		rows = append(rows, templates.CartRow{
			ID:      c.ID,
			UserID:  c.UserID,
			Date:    listsync.FormatDate(c.Date, tag),
			Items:   len(c.Products),
			Units:   c.Units(),
			EditURL: routepath.CartEdit(c.ID),
		})
	}
	return rows
}
