package admin

import (
	"io/fs"
	"log"
	"net/http"

	authmodule "github.com/louisbranch/megamix/internal/services/admin/module/auth"
	cartsmodule "github.com/louisbranch/megamix/internal/services/admin/module/carts"
	dashboardmodule "github.com/louisbranch/megamix/internal/services/admin/module/dashboard"
	productsmodule "github.com/louisbranch/megamix/internal/services/admin/module/products"
	usersmodule "github.com/louisbranch/megamix/internal/services/admin/module/users"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/services/admin/session"
	"github.com/louisbranch/megamix/internal/services/admin/transport/httpmux"
)

// routes wires the HTTP routes for the admin handler. Everything except the
// login screen and static assets requires a session.
func (h *Handler) routes() http.Handler {
	adminMux := http.NewServeMux()
	dashboardmodule.RegisterRoutes(adminMux, newDashboardModuleService(h))
	authmodule.RegisterRoutes(adminMux, newAuthModuleService(h))
	productsmodule.RegisterRoutes(adminMux, newProductsModuleService(h))
	cartsmodule.RegisterRoutes(adminMux, newCartsModuleService(h))
	usersmodule.RegisterRoutes(adminMux, newUsersModuleService(h))

	rootMux := http.NewServeMux()
	if staticFS, err := fs.Sub(staticAssets, "static"); err != nil {
		log.Printf("admin static assets unavailable: %v", err)
	} else {
		httpmux.MountStatic(rootMux, staticFS)
	}
	httpmux.MountAdminRoutes(rootMux, adminMux)

	guard := session.Guard{
		LoginPath: routepath.Login,
		Exempt:    []string{routepath.Login, routepath.StaticPrefix},
	}
	return httpmux.Trace(h.tracer, guard.Require(rootMux))
}
