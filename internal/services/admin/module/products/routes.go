package products

import (
	"net/http"

	routepath "github.com/louisbranch/megamix/internal/services/admin/routepath"
)

// Service defines product route handlers consumed by this route module.
type Service interface {
	HandleProductsPage(w http.ResponseWriter, r *http.Request)
	HandleProductsTable(w http.ResponseWriter, r *http.Request)
	HandleProductDelete(w http.ResponseWriter, r *http.Request)
	HandleProductNew(w http.ResponseWriter, r *http.Request)
	HandleProductEdit(w http.ResponseWriter, r *http.Request)
	HandleProductField(w http.ResponseWriter, r *http.Request)
	HandleProductSubmit(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires product routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Products, service.HandleProductsPage)
	mux.HandleFunc(routepath.ProductsTable, service.HandleProductsTable)
	mux.HandleFunc(routepath.ProductsDelete, service.HandleProductDelete)
	mux.HandleFunc(routepath.ProductsNew, service.HandleProductNew)
	mux.HandleFunc(routepath.ProductsEdit, service.HandleProductEdit)
	mux.HandleFunc(routepath.ProductsFormField, service.HandleProductField)
	mux.HandleFunc(routepath.ProductsFormSubmit, service.HandleProductSubmit)
}
