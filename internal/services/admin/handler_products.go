package admin

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/megamix/internal/services/admin/editor"
	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/listsync"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/services/admin/templates"
	"github.com/louisbranch/megamix/internal/storefront"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var productList = listResource[storefront.Product]{
	resource:   resourceProducts,
	listPath:   routepath.Products,
	tablePath:  routepath.ProductsTable,
	tableID:    "products-table",
	headingKey: "products.title",
	newPath:    routepath.ProductsNew,
	newKey:     "products.new",
	messages: listsync.Messages{
		FetchFailed:  notice.KeyProductsFetchFailed,
		DeleteFailed: notice.KeyProductDeleteFailed,
		Deleted:      notice.KeyProductDeleted,
	},
	source: func(h *Handler, token string) listsync.Source[storefront.Product] {
		return h.store.Products(token)
	},
	table: func(h *Handler, page templates.PageContext, tag language.Tag, screenID string, rows *listsync.Synchronizer[storefront.Product]) templ.Component {
		return templates.ProductTable(templates.ProductTableView{
			Page:     page,
			ScreenID: screenID,
			Rows:     productRows(rows.Items(), h.currency, tag),
			Empty:    rows.Empty(),
		})
	},
}

var productForm = formResource[*editor.ProductEditor]{
	resource: resourceProducts,
	listPath: routepath.Products,
	fields:   form.ProductFields,
	newEditor: func(h *Handler, token string, notices notice.Sink, id int) *editor.ProductEditor {
		return editor.NewProductEditor(h.store.Products(token), notices, id)
	},
	view: func(page templates.PageContext, screenID string, ed *editor.ProductEditor) templates.FormView {
		return templates.NewProductFormView(page, screenID, ed.Mode() == editor.ModeEdit, ed.Draft(), ed.Errors())
	},
}

func (h *Handler) handleProductsPage(w http.ResponseWriter, r *http.Request) {
	serveListPage(h, w, r, productList)
}

func (h *Handler) handleProductsTable(w http.ResponseWriter, r *http.Request) {
	serveListTable(h, w, r, productList)
}

func (h *Handler) handleProductDelete(w http.ResponseWriter, r *http.Request) {
	serveListDelete(h, w, r, productList)
}

func (h *Handler) handleProductNew(w http.ResponseWriter, r *http.Request) {
	serveFormNew(h, w, r, productForm)
}

func (h *Handler) handleProductEdit(w http.ResponseWriter, r *http.Request) {
	serveFormEdit(h, w, r, productForm)
}

func (h *Handler) handleProductField(w http.ResponseWriter, r *http.Request) {
	serveFormField(h, w, r, productForm)
}

func (h *Handler) handleProductSubmit(w http.ResponseWriter, r *http.Request) {
	serveFormSubmit(h, w, r, productForm)
}

func productRows(products []storefront.Product, unit currency.Unit, tag language.Tag) []templates.ProductRow {
	rows := make([]templates.ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, templates.ProductRow{
			ID:          p.ID,
			Title:       p.Title,
			Description: truncateText(p.Description, descriptionLimit),
			Category:    p.Category,
			Image:       p.Image,
			Price:       listsync.FormatPrice(p.Price, unit, tag),
			Rating:      listsync.FormatRating(p.Rating, tag),
			EditURL:     routepath.ProductEdit(p.ID),
		})
	}
	return rows
}
