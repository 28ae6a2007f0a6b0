package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/louisbranch/megamix/internal/services/admin/listsync"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/render"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/services/admin/storage"
	"github.com/louisbranch/megamix/internal/services/admin/templates"
	sharedroute "github.com/louisbranch/megamix/internal/services/shared/route"
	"golang.org/x/text/language"
)

// handleDashboard renders the dashboard shell; totals load separately.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	loc, tag := h.localizer(w, r)
	page := h.pageContext(w, r, loc, tag, loc.Sprintf("dashboard.title"))
	render.Page(w, r, templates.DashboardPage(templates.DashboardView{Page: page}), page.Title, http.StatusOK)
}

// handleDashboardContent loads the storefront totals and recent activity.
func (h *Handler) handleDashboardContent(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	loc, tag := h.localizer(w, r)
	notices := &notice.Recorder{}
	view := templates.DashboardContentView{}

	summary, err := h.store.Summary(r.Context(), sessionToken(r))
	if err != nil {
		logStoreError("load dashboard summary", err)
		notices.Error(notice.KeyFetchFailed)
		view.Failed = true
	} else {
		view.Summary = summary
	}
	view.Activity = h.recentActivity(r, tag)
	view.Page = fragmentContext(loc, tag, notices.Drain())
	render.Fragment(w, r, templates.DashboardContent(view))
}

func (h *Handler) recentActivity(r *http.Request, tag language.Tag) []templates.ActivityRow {
	if h.storage == nil {
		return nil
	}
	activity, err := h.storage.RecentActivity(r.Context(), activityLimit)
	if err != nil {
		logStoreError("load recent activity", err)
		return nil
	}
	rows := make([]templates.ActivityRow, 0, len(activity))
	for _, entry := range activity {
		row := templates.ActivityRow{
			When:        listsync.FormatDate(entry.CreatedAt.Format(time.RFC3339), tag),
			ResourceKey: "activity.resource." + entry.Resource,
			ActionKey:   "activity.action." + entry.Action,
			OutcomeKey:  "activity.outcome." + entry.Outcome,
			Failed:      entry.Outcome == storage.OutcomeFailure,
		}
		if entry.TargetID > 0 {
			row.TargetID = strconv.Itoa(entry.TargetID)
		}
		rows = append(rows, row)
	}
	return rows
}
