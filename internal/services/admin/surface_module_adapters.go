package admin

import (
	"net/http"

	authmodule "github.com/louisbranch/megamix/internal/services/admin/module/auth"
	cartsmodule "github.com/louisbranch/megamix/internal/services/admin/module/carts"
	dashboardmodule "github.com/louisbranch/megamix/internal/services/admin/module/dashboard"
	productsmodule "github.com/louisbranch/megamix/internal/services/admin/module/products"
	usersmodule "github.com/louisbranch/megamix/internal/services/admin/module/users"
)

type dashboardModuleService struct {
	handler *Handler
}

func newDashboardModuleService(h *Handler) dashboardmodule.Service {
	if h == nil {
		return nil
	}
	return dashboardModuleService{handler: h}
}

func (s dashboardModuleService) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboard(w, r)
}

func (s dashboardModuleService) HandleDashboardContent(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboardContent(w, r)
}

type authModuleService struct {
	handler *Handler
}

func newAuthModuleService(h *Handler) authmodule.Service {
	if h == nil {
		return nil
	}
	return authModuleService{handler: h}
}

func (s authModuleService) HandleLogin(w http.ResponseWriter, r *http.Request) {
	s.handler.handleLogin(w, r)
}

func (s authModuleService) HandleLogout(w http.ResponseWriter, r *http.Request) {
	s.handler.handleLogout(w, r)
}

type productsModuleService struct {
	handler *Handler
}

func newProductsModuleService(h *Handler) productsmodule.Service {
	if h == nil {
		return nil
	}
	return productsModuleService{handler: h}
}

func (s productsModuleService) HandleProductsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleProductsPage(w, r)
}

func (s productsModuleService) HandleProductsTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleProductsTable(w, r)
}

func (s productsModuleService) HandleProductDelete(w http.ResponseWriter, r *http.Request) {
	s.handler.handleProductDelete(w, r)
}

func (s productsModuleService) HandleProductNew(w http.ResponseWriter, r *http.Request) {
	s.handler.handleProductNew(w, r)
}

func (s productsModuleService) HandleProductEdit(w http.ResponseWriter, r *http.Request) {
	s.handler.handleProductEdit(w, r)
}

func (s productsModuleService) HandleProductField(w http.ResponseWriter, r *http.Request) {
	s.handler.handleProductField(w, r)
}

func (s productsModuleService) HandleProductSubmit(w http.ResponseWriter, r *http.Request) {
	s.handler.handleProductSubmit(w, r)
}

type cartsModuleService struct {
	handler *Handler
}

func newCartsModuleService(h *Handler) cartsmodule.Service {
	if h == nil {
		return nil
	}
	return cartsModuleService{handler: h}
}

func (s cartsModuleService) HandleCartsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleCartsPage(w, r)
}

func (s cartsModuleService) HandleCartsTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleCartsTable(w, r)
}

func (s cartsModuleService) HandleCartDelete(w http.ResponseWriter, r *http.Request) {
	s.handler.handleCartDelete(w, r)
}

func (s cartsModuleService) HandleCartNew(w http.ResponseWriter, r *http.Request) {
	s.handler.handleCartNew(w, r)
}

func (s cartsModuleService) HandleCartEdit(w http.ResponseWriter, r *http.Request) {
	s.handler.handleCartEdit(w, r)
}

func (s cartsModuleService) HandleCartField(w http.ResponseWriter, r *http.Request) {
	s.handler.handleCartField(w, r)
}

func (s cartsModuleService) HandleCartItemAdd(w http.ResponseWriter, r *http.Request) {
	s.handler.handleCartItemAdd(w, r)
}

func (s cartsModuleService) HandleCartItemRemove(w http.ResponseWriter, r *http.Request) {
	s.handler.handleCartItemRemove(w, r)
}

func (s cartsModuleService) HandleCartSubmit(w http.ResponseWriter, r *http.Request) {
	s.handler.handleCartSubmit(w, r)
}

type usersModuleService struct {
	handler *Handler
}

func newUsersModuleService(h *Handler) usersmodule.Service {
	if h == nil {
		return nil
	}
	return usersModuleService{handler: h}
}

func (s usersModuleService) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleUsersPage(w, r)
}

func (s usersModuleService) HandleUsersTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleUsersTable(w, r)
}

func (s usersModuleService) HandleUserDelete(w http.ResponseWriter, r *http.Request) {
	s.handler.handleUserDelete(w, r)
}

func (s usersModuleService) HandleUserNew(w http.ResponseWriter, r *http.Request) {
	s.handler.handleUserNew(w, r)
}

func (s usersModuleService) HandleUserEdit(w http.ResponseWriter, r *http.Request) {
	s.handler.handleUserEdit(w, r)
}

func (s usersModuleService) HandleUserField(w http.ResponseWriter, r *http.Request) {
	s.handler.handleUserField(w, r)
}

func (s usersModuleService) HandleUserSubmit(w http.ResponseWriter, r *http.Request) {
	s.handler.handleUserSubmit(w, r)
}
