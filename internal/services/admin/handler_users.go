package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/megamix/internal/services/admin/editor"
	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/listsync"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/services/admin/templates"
	"github.com/louisbranch/megamix/internal/storefront"
	"golang.org/x/text/language"
)

var userList = listResource[storefront.User]{
	resource:   resourceUsers,
	listPath:   routepath.Users,
	tablePath:  routepath.UsersTable,
	tableID:    "users-table",
	headingKey: "users.title",
	newPath:    routepath.UsersNew,
	newKey:     "users.new",
	messages: listsync.Messages{
		FetchFailed:  notice.KeyUsersFetchFailed,
		DeleteFailed: notice.KeyUserDeleteFailed,
		Deleted:      notice.KeyUserDeleted,
	},
	source: func(h *Handler, token string) listsync.Source[storefront.User] {
		return h.store.Users(token)
	},
	table: func(_ *Handler, page templates.PageContext, _ language.Tag, screenID string, rows *listsync.Synchronizer[storefront.User]) templ.Component {
		return templates.UserTable(templates.UserTableView{
			Page:     page,
			ScreenID: screenID,
			Rows:     userRows(rows.Items()),
			Empty:    rows.Empty(),
		})
	},
}

var userForm = formResource[*editor.UserEditor]{
	resource: resourceUsers,
	listPath: routepath.Users,
	fields:   form.UserFields,
	newEditor: func(h *Handler, token string, notices notice.Sink, id int) *editor.UserEditor {
		return editor.NewUserEditor(h.store.Users(token), notices, id)
	},
	view: func(page templates.PageContext, screenID string, ed *editor.UserEditor) templates.FormView {
		return templates.NewUserFormView(page, screenID, ed.Mode() == editor.ModeEdit, ed.Draft(), ed.Errors())
	},
}

func (h *Handler) handleUsersPage(w http.ResponseWriter, r *http.Request) {
	serveListPage(h, w, r, userList)
}

func (h *Handler) handleUsersTable(w http.ResponseWriter, r *http.Request) {
	serveListTable(h, w, r, userList)
}

func (h *Handler) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	serveListDelete(h, w, r, userList)
}

func (h *Handler) handleUserNew(w http.ResponseWriter, r *http.Request) {
	serveFormNew(h, w, r, userForm)
}

func (h *Handler) handleUserEdit(w http.ResponseWriter, r *http.Request) {
	serveFormEdit(h, w, r, userForm)
}

func (h *Handler) handleUserField(w http.ResponseWriter, r *http.Request) {
	serveFormField(h, w, r, userForm)
}

func (h *Handler) handleUserSubmit(w http.ResponseWriter, r *http.Request) {
	serveFormSubmit(h, w, r, userForm)
}

func userRows(users []storefront.User) []templates.UserRow {
	rows := make([]templates.UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, templates.UserRow{
			ID:       u.ID,
			FullName: u.Name.Full(),
			Username: u.Username,
			Email:    u.Email,
			Phone:    u.Phone,
			Address:  formatAddress(u.Address),
			Geo:      formatGeo(u.Address.Geolocation),
			EditURL:  routepath.UserEdit(u.ID),
		})
	}
	return rows
}

// formatAddress joins "number street, city zipcode", skipping blanks.
func formatAddress(a storefront.Address) string {
	street := strings.TrimSpace(a.Street)
	if a.Number > 0 {
		street = strings.TrimSpace(strconv.Itoa(a.Number) + " " + street)
	}
	locality := strings.TrimSpace(strings.TrimSpace(a.City) + " " + strings.TrimSpace(a.Zipcode))
	parts := make([]string, 0, 2)
	for _, part := range []string{street, locality} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func formatGeo(g storefront.Geolocation) string {
	lat, long := strings.TrimSpace(g.Lat), strings.TrimSpace(g.Long)
	if lat == "" && long == "" {
		return ""
	}
	return lat + ", " + long
}
