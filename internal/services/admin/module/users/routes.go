package users

import (
	"net/http"

	routepath "github.com/louisbranch/megamix/internal/services/admin/routepath"
)

// Service defines user route handlers consumed by this route module.
type Service interface {
	HandleUsersPage(w http.ResponseWriter, r *http.Request)
	HandleUsersTable(w http.ResponseWriter, r *http.Request)
	HandleUserDelete(w http.ResponseWriter, r *http.Request)
	HandleUserNew(w http.ResponseWriter, r *http.Request)
	HandleUserEdit(w http.ResponseWriter, r *http.Request)
	HandleUserField(w http.ResponseWriter, r *http.Request)
	HandleUserSubmit(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires user routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Users, service.HandleUsersPage)
	mux.HandleFunc(routepath.UsersTable, service.HandleUsersTable)
	mux.HandleFunc(routepath.UsersDelete, service.HandleUserDelete)
	mux.HandleFunc(routepath.UsersNew, service.HandleUserNew)
	mux.HandleFunc(routepath.UsersEdit, service.HandleUserEdit)
	mux.HandleFunc(routepath.UsersFormField, service.HandleUserField)
	mux.HandleFunc(routepath.UsersFormSubmit, service.HandleUserSubmit)
}
