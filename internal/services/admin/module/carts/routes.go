package carts

import (
	"net/http"

	routepath "github.com/louisbranch/megamix/internal/services/admin/routepath"
)

// Service defines cart route handlers consumed by this route module.
type Service interface {
	HandleCartsPage(w http.ResponseWriter, r *http.Request)
	HandleCartsTable(w http.ResponseWriter, r *http.Request)
	HandleCartDelete(w http.ResponseWriter, r *http.Request)
	HandleCartNew(w http.ResponseWriter, r *http.Request)
	HandleCartEdit(w http.ResponseWriter, r *http.Request)
	HandleCartField(w http.ResponseWriter, r *http.Request)
	HandleCartItemAdd(w http.ResponseWriter, r *http.Request)
	HandleCartItemRemove(w http.ResponseWriter, r *http.Request)
	HandleCartSubmit(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires cart routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Carts, service.HandleCartsPage)
	mux.HandleFunc(routepath.CartsTable, service.HandleCartsTable)
	mux.HandleFunc(routepath.CartsDelete, service.HandleCartDelete)
	mux.HandleFunc(routepath.CartsNew, service.HandleCartNew)
	mux.HandleFunc(routepath.CartsEdit, service.HandleCartEdit)
	mux.HandleFunc(routepath.CartsFormField, service.HandleCartField)
	mux.HandleFunc(routepath.CartsFormItemAdd, service.HandleCartItemAdd)
	mux.HandleFunc(routepath.CartsFormItemRemove, service.HandleCartItemRemove)
	mux.HandleFunc(routepath.CartsFormSubmit, service.HandleCartSubmit)
}
