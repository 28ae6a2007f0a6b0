package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/megamix/internal/platform/requestctx"
	"github.com/louisbranch/megamix/internal/platform/requestmeta"
	"github.com/louisbranch/megamix/internal/platform/timeouts"
	"github.com/louisbranch/megamix/internal/services/admin/i18n"
	"github.com/louisbranch/megamix/internal/services/admin/integration/storeapi"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/render"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/services/admin/screens"
	"github.com/louisbranch/megamix/internal/services/admin/session"
	"github.com/louisbranch/megamix/internal/services/admin/storage"
	"github.com/louisbranch/megamix/internal/services/admin/templates"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// activityLimit caps the rows shown in the dashboard activity table.
	activityLimit = 10
	// maxFormBytes caps posted form bodies.
	maxFormBytes = 64 << 10
	// descriptionLimit caps the characters shown in table cells.
	descriptionLimit = 80
)

// Activity resources.
const (
	resourceProducts = "products"
	resourceCarts    = "carts"
	resourceUsers    = "users"
	resourceSession  = "session"
)

// HandlerConfig wires the handler to its collaborators.
type HandlerConfig struct {
	Store *storeapi.Client
	// Storage records console activity and login audits. Optional.
	Storage storage.Store
	// Screens holds open list and edit screens. A default registry is
	// created when nil.
	Screens  *screens.Registry
	Currency currency.Unit
	Now      func() time.Time
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Handler routes admin console requests.
type Handler struct {
	store    *storeapi.Client
	storage  storage.Store
	screens  *screens.Registry
	currency currency.Unit
	now      func() time.Time
	tracer   trace.TracerProvider
}

// NewHandler builds the HTTP handler for the admin console.
func NewHandler(config HandlerConfig) http.Handler {
	return newHandler(config).routes()
}

func newHandler(config HandlerConfig) *Handler {
	h := &Handler{
		store:    config.Store,
		storage:  config.Storage,
		screens:  config.Screens,
		currency: config.Currency,
		now:      config.Now,
		tracer:   config.TracerProvider,
	}
	if h.screens == nil {
		h.screens = screens.NewRegistry(timeouts.ScreenTTL)
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag
}

// pageContext collects flashed notices from the previous request followed by
// the ones raised while handling this one.
func (h *Handler) pageContext(w http.ResponseWriter, r *http.Request, loc *message.Printer, tag language.Tag, title string, raised ...notice.Notice) templates.PageContext {
	notices := notice.ReadAndClearFlash(w, r)
	notices = append(notices, raised...)
	return templates.PageContext{
		Lang:          tag.String(),
		Loc:           loc,
		Title:         title,
		CurrentPath:   r.URL.Path,
		CurrentQuery:  r.URL.RawQuery,
		Authenticated: session.Check(session.ReadToken(r)).Authenticated,
		Notices:       notices,
		Languages: i18n.LanguageOptions(tag.String(), r.URL.Path, r.URL.RawQuery, func(key string) string {
			return loc.Sprintf(key)
		}),
	}
}

// fragmentContext is pageContext for partial swaps, which never consume the
// flash cookie.
func fragmentContext(loc *message.Printer, tag language.Tag, raised []notice.Notice) templates.PageContext {
	return templates.PageContext{Lang: tag.String(), Loc: loc, Notices: raised}
}

// navigate flashes notices and sends the browser to target.
func navigate(w http.ResponseWriter, r *http.Request, target string, notices []notice.Notice) {
	notice.WriteFlash(w, r, notices...)
	render.Redirect(w, r, target)
}

func sessionToken(r *http.Request) string {
	return requestctx.SessionTokenFromContext(r.Context())
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

// requirePost checks the method, the origin, and parses the form.
func requirePost(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if !requireMethod(w, r, http.MethodPost) {
		return false
	}
	if !requireSameOrigin(w, r, loc) {
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	return true
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if !requestmeta.HasSameOriginProof(r) {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	return true
}

// entityID reads a positive id parameter; zero means absent or malformed.
func entityID(values url.Values) int {
	id, err := strconv.Atoi(strings.TrimSpace(values.Get(routepath.ParamID)))
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// screenExpired tells the operator the screen is gone and offers a reload.
// htmx requests swap the message into main instead of the issuing element.
func (h *Handler) screenExpired(w http.ResponseWriter, r *http.Request, reloadURL string) {
	loc, tag := h.localizer(w, r)
	page := h.pageContext(w, r, loc, tag, loc.Sprintf("error.screen_expired"))
	status := http.StatusGone
	if render.IsHTMX(r) {
		render.Retarget(w, "#main", "innerHTML")
		status = http.StatusOK
	}
	render.Page(w, r, templates.MessagePage(templates.MessageView{
		Page:       page,
		HeadingKey: "error.screen_expired",
		BodyKey:    notice.KeyScreenExpired,
		LinkURL:    reloadURL,
		LinkKey:    "action.reload",
	}), page.Title, status)
}

// recordActivity stores the outcome of one remote mutation. Local validation
// failures never reach the store and are not recorded.
func (h *Handler) recordActivity(ctx context.Context, resource, action string, targetID int, err error) {
	if h.storage == nil {
		return
	}
	outcome := storage.OutcomeSuccess
	if err != nil {
		outcome = storage.OutcomeFailure
	}
	activity := storage.Activity{
		Resource:  resource,
		Action:    action,
		TargetID:  targetID,
		Outcome:   outcome,
		CreatedAt: h.now().UTC(),
	}
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.HasTraceID() {
		activity.TraceID = spanCtx.TraceID().String()
	}
	// Recording runs after the response outcome is decided; it must not fail
	// the request.
	if recErr := h.storage.RecordActivity(context.WithoutCancel(ctx), activity); recErr != nil {
		log.Printf("record %s %s activity: %v", resource, action, recErr)
	}
}

// logStoreError logs remote failures that are already surfaced as notices.
func logStoreError(op string, err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	log.Printf("%s: %v", op, err)
}

func truncateText(text string, limit int) string {
	if limit <= 0 || text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
