package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
)

//go:embed html/*.html
var htmlFS embed.FS

const (
	layoutFile   = "html/layout.html"
	partialsFile = "html/partials.html"
)

// pages holds one template set per page file, each sharing the layout and
// partials but defining its own "content".
var pages = mustParsePages(htmlFS)

var funcs = template.FuncMap{
	"t": func(loc Localizer, key string, args ...any) string {
		return T(loc, key, args...)
	},
	"noticeClass": func(kind notice.Kind) string {
		return "notice notice-" + string(kind)
	},
	"active": func(current, prefix string) bool {
		if prefix == "/" {
			return current == "/"
		}
		return current == prefix || strings.HasPrefix(current, prefix+"/")
	},
}

func mustParsePages(fsys fs.FS) map[string]*template.Template {
	base, err := template.New("base").Funcs(funcs).ParseFS(fsys, layoutFile, partialsFile)
	if err != nil {
		panic(fmt.Sprintf("parse layout: %v", err))
	}
	files, err := fs.Glob(fsys, "html/page_*.html")
	if err != nil {
		panic(fmt.Sprintf("glob pages: %v", err))
	}
	sets := make(map[string]*template.Template, len(files))
	for _, file := range files {
		set, err := template.Must(base.Clone()).ParseFS(fsys, file)
		if err != nil {
			panic(fmt.Sprintf("parse %s: %v", file, err))
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path.Base(file), "page_"), ".html")
		sets[name] = set
	}
	return sets
}

// component adapts a named template of a page set to templ.
func component(page, name string, data any) templ.Component {
	set, ok := pages[page]
	if !ok {
		panic("templates: unknown page " + page)
	}
	tmpl := set.Lookup(name)
	if tmpl == nil {
		panic("templates: " + page + " has no template " + name)
	}
	return templ.FromGoHTML(tmpl, data)
}

// DashboardPage renders the dashboard shell.
func DashboardPage(view DashboardView) templ.Component {
	return component("dashboard", "page", view)
}

// DashboardContent renders the loaded dashboard totals.
func DashboardContent(view DashboardContentView) templ.Component {
	return component("dashboard", "dashboard_content", view)
}

// LoginPage renders the sign-in form.
func LoginPage(view LoginView) templ.Component {
	return component("login", "page", view)
}

// ListPage renders a resource list shell with a table placeholder.
func ListPage(view ListView) templ.Component {
	return component("list", "page", view)
}

// ProductTable renders the loaded product table.
func ProductTable(view ProductTableView) templ.Component {
	return component("products", "products_table", view)
}

// CartTable renders the loaded cart table.
func CartTable(view CartTableView) templ.Component {
	return component("carts", "carts_table", view)
}

// UserTable renders the loaded user table.
func UserTable(view UserTableView) templ.Component {
	return component("users", "users_table", view)
}

// FormPage renders a product or user editor.
func FormPage(view FormView) templ.Component {
	return component("form", "page", view)
}

// CartFormPage renders the cart editor.
func CartFormPage(view CartFormView) templ.Component {
	return component("cart_form", "page", view)
}

// FieldErrors renders one field's message list plus refreshed notices.
func FieldErrors(view FieldErrorsView) templ.Component {
	return component("form", "field_errors_fragment", view)
}

// MessagePage renders a standalone message page.
func MessagePage(view MessageView) templ.Component {
	return component("message", "page", view)
}

// FieldErrorsView is the response to a live field edit.
type FieldErrorsView struct {
	Page  PageContext
	Field FieldView
}
