package templates

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/storefront"
	"golang.org/x/net/html"
	"golang.org/x/text/message"
)

type keyLocalizer struct{}

func (keyLocalizer) Sprintf(key message.Reference, _ ...any) string {
	return fmt.Sprintf("[%v]", key)
}

func testPage() PageContext {
	return PageContext{Lang: "en", Loc: keyLocalizer{}, Title: "Products", CurrentPath: "/products", Authenticated: true}
}

func renderComponent(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func parseHTML(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestListPageRendersLayoutAndPlaceholder(t *testing.T) {
	t.Parallel()

	page := testPage()
	page.Notices = []notice.Notice{{Kind: notice.KindSuccess, Key: "notice.product_updated"}}
	body := renderComponent(t, ListPage(ListView{
		Page:       page,
		HeadingKey: "products.title",
		NewURL:     "/products/new",
		NewKey:     "products.new",
		TableID:    "products-table",
		TableURL:   "/products/table?screen=abc",
	}))
	doc := parseHTML(t, body)

	main := findByID(doc, "main")
	if main == nil {
		t.Fatal("expected main region")
	}
	notices := findByID(main, "notices")
	if notices == nil || attr(notices, "role") != "status" {
		t.Fatalf("expected notices status region inside main")
	}
	if got := text(notices); !strings.Contains(got, "[notice.product_updated]") {
		t.Fatalf("notices = %q", got)
	}
	table := findByID(doc, "products-table")
	if table == nil {
		t.Fatal("expected table placeholder")
	}
	if got := attr(table, "hx-get"); got != "/products/table?screen=abc" {
		t.Fatalf("hx-get = %q", got)
	}
	if got := attr(table, "hx-trigger"); got != "load" {
		t.Fatalf("hx-trigger = %q", got)
	}

	var current []string
	for _, a := range findAll(doc, "a") {
		if attr(a, "aria-current") == "page" {
			current = append(current, attr(a, "href"))
		}
	}
	if len(current) != 1 || current[0] != "/products" {
		t.Fatalf("current nav = %v, want [/products]", current)
	}
}

func TestLayoutHidesNavigationWhenSignedOut(t *testing.T) {
	t.Parallel()

	page := testPage()
	page.Authenticated = false
	body := renderComponent(t, LoginPage(NewLoginView(page, form.LoginDraft{Username: "mor_2314", Password: "secret"}, form.NewFieldErrors(form.LoginFields...))))
	doc := parseHTML(t, body)

	if navs := findAll(doc, "nav"); len(navs) != 0 {
		t.Fatalf("nav count = %d, want 0", len(navs))
	}
	password := findByID(doc, "field-password")
	if password == nil {
		t.Fatal("expected password input")
	}
	if got := attr(password, "value"); got != "" {
		t.Fatalf("password value = %q, want blank", got)
	}
	if got := attr(findByID(doc, "field-username"), "value"); got != "mor_2314" {
		t.Fatalf("username value = %q", got)
	}
}

func TestProductTableRowsAndEmptyState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		view      ProductTableView
		wantRows  int
		wantEmpty bool
	}{
		{
			name:      "empty",
			view:      ProductTableView{Page: testPage(), ScreenID: "s1", Empty: true},
			wantEmpty: true,
		},
		{
			name: "rows",
			view: ProductTableView{Page: testPage(), ScreenID: "s1", Rows: []ProductRow{
				{ID: 1, Title: "Backpack", Price: "$109.95", Rating: "3.9 (120)", Image: "https://img/1.jpg", EditURL: "/products/edit?id=1"},
				{ID: 2, Title: "Shirt", Price: "$22.30", Rating: "4.1 (259)", Image: "https://img/2.jpg", EditURL: "/products/edit?id=2"},
			}},
			wantRows: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := parseHTML(t, renderComponent(t, ProductTable(tc.view)))
			table := findByID(doc, "products-table")
			if table == nil {
				t.Fatal("expected products-table")
			}
			if got := len(findAll(table, "tbody")); tc.wantRows > 0 && got != 1 {
				t.Fatalf("tbody count = %d", got)
			}
			rows := 0
			for _, tr := range findAll(table, "tr") {
				if strings.HasPrefix(attr(tr, "id"), "product-") {
					rows++
				}
			}
			if rows != tc.wantRows {
				t.Fatalf("rows = %d, want %d", rows, tc.wantRows)
			}
			if got := strings.Contains(text(table), "[state.empty]"); got != tc.wantEmpty {
				t.Fatalf("empty state shown = %v, want %v", got, tc.wantEmpty)
			}
			oob := findByID(doc, "notices")
			if oob == nil || attr(oob, "hx-swap-oob") != "true" {
				t.Fatal("expected out-of-band notices")
			}
		})
	}
}

func TestProductTableDeleteFormCarriesScreen(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderComponent(t, ProductTable(ProductTableView{
		Page:     testPage(),
		ScreenID: "screen-7",
		Rows:     []ProductRow{{ID: 7, Title: "Ring", EditURL: "/products/edit?id=7"}},
	})))
	forms := findAll(doc, "form")
	if len(forms) != 1 {
		t.Fatalf("forms = %d, want 1", len(forms))
	}
	values := map[string]string{}
	for _, input := range findAll(forms[0], "input") {
		values[attr(input, "name")] = attr(input, "value")
	}
	if values["screen"] != "screen-7" || values["id"] != "7" {
		t.Fatalf("hidden inputs = %v", values)
	}
	if got := attr(forms[0], "hx-post"); got != "/products/delete" {
		t.Fatalf("hx-post = %q", got)
	}
}

func TestProductFormShowsFieldErrors(t *testing.T) {
	t.Parallel()

	errs := form.NewFieldErrors(form.ProductFields...)
	errs.Add(form.FieldTitle, form.MsgRequired)
	view := NewProductFormView(testPage(), "s9", true, form.ProductDraft{Price: 12.5, Category: "jewelery"}, errs)
	doc := parseHTML(t, renderComponent(t, FormPage(view)))

	title := findByID(doc, "field-title")
	if title == nil {
		t.Fatal("expected title input")
	}
	if attr(title, "aria-invalid") != "true" {
		t.Fatal("expected title marked invalid")
	}
	if got := attr(title, "hx-post"); got != "/products/form/field?field=title" {
		t.Fatalf("title hx-post = %q", got)
	}
	if got := text(findByID(doc, "errors-title")); got != "[validation.required]" {
		t.Fatalf("title errors = %q", got)
	}
	if hasAttr(findByID(doc, "field-category"), "aria-invalid") {
		t.Fatal("category should not be invalid")
	}
	if got := attr(findByID(doc, "field-price"), "value"); got != "12.5" {
		t.Fatalf("price value = %q", got)
	}
	description := findByID(doc, "field-description")
	if description == nil || description.Data != "textarea" {
		t.Fatal("expected description textarea")
	}
	heading := findAll(doc, "h1")
	if len(heading) != 1 || text(heading[0]) != "[products.edit]" {
		t.Fatalf("heading = %v", heading)
	}
}

func TestCartFormListsItemsWithRemoveButtons(t *testing.T) {
	t.Parallel()

	draft := form.CartDraft{UserID: 3, Items: []storefront.LineItem{{ProductID: 5, Quantity: 2}, {ProductID: 9, Quantity: 1}}}
	itemErrs := form.NewFieldErrors(form.LineItemFields...)
	itemErrs.Add(form.FieldQuantity, form.MsgLineItemQuantity)
	view := NewCartFormView(testPage(), "c1", false, draft, form.NewFieldErrors(form.CartFields...), itemErrs, PendingItem{ProductID: "4", Quantity: "0"})
	doc := parseHTML(t, renderComponent(t, CartFormPage(view)))

	var removes []string
	for _, button := range findAll(doc, "button") {
		if attr(button, "name") == "index" {
			removes = append(removes, attr(button, "value"))
		}
	}
	if strings.Join(removes, ",") != "0,1" {
		t.Fatalf("remove buttons = %v", removes)
	}
	if got := attr(findByID(doc, "field-productId"), "value"); got != "4" {
		t.Fatalf("pending product = %q", got)
	}
	if got := text(findByID(doc, "errors-quantity")); got != "[validation.line_item_quantity]" {
		t.Fatalf("quantity errors = %q", got)
	}
	if hasAttr(findByID(doc, "field-productId"), "hx-post") {
		t.Fatal("sub-form inputs should not validate live")
	}
	if got := attr(findByID(doc, "field-userId"), "value"); got != "3" {
		t.Fatalf("user id = %q", got)
	}
}

func TestFieldErrorsFragment(t *testing.T) {
	t.Parallel()

	page := testPage()
	page.Notices = []notice.Notice{{Kind: notice.KindWarning, Key: "notice.submit_in_progress"}}
	body := renderComponent(t, FieldErrors(FieldErrorsView{
		Page:  page,
		Field: FieldView{Loc: page.Loc, Name: "email", Errors: []string{"validation.email"}},
	}))
	doc := parseHTML(t, body)

	list := findByID(doc, "errors-email")
	if list == nil || text(list) != "[validation.email]" {
		t.Fatalf("errors-email = %q", body)
	}
	oob := findByID(doc, "notices")
	if oob == nil || attr(oob, "hx-swap-oob") != "true" {
		t.Fatal("expected out-of-band notices")
	}
	if !strings.Contains(attr(findAll(oob, "p")[0], "class"), "notice-warning") {
		t.Fatalf("notice class = %q", attr(findAll(oob, "p")[0], "class"))
	}
}

func TestDashboardContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		view     DashboardContentView
		contains []string
		missing  []string
	}{
		{
			name: "totals",
			view: DashboardContentView{
				Page:    testPage(),
				Summary: storefront.Summary{Products: 20, Categories: 4, Carts: 7, Users: 10},
				Activity: []ActivityRow{{
					When: "10/16/2026", ResourceKey: "nav.products", ActionKey: "activity.action.update",
					OutcomeKey: "activity.outcome.success", TargetID: "3",
				}},
			},
			contains: []string{"20", "[dashboard.categories]", "[activity.action.update]"},
			missing:  []string{"[dashboard.unavailable]", "[dashboard.activity_empty]"},
		},
		{
			name:     "failed",
			view:     DashboardContentView{Page: testPage(), Failed: true},
			contains: []string{"[dashboard.unavailable]", "[dashboard.activity_empty]"},
			missing:  []string{"[dashboard.categories]"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := text(parseHTML(t, renderComponent(t, DashboardContent(tc.view))))
			for _, want := range tc.contains {
				if !strings.Contains(got, want) {
					t.Fatalf("expected %q in %q", want, got)
				}
			}
			for _, unwanted := range tc.missing {
				if strings.Contains(got, unwanted) {
					t.Fatalf("unexpected %q in %q", unwanted, got)
				}
			}
		})
	}
}

func TestMessagePage(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderComponent(t, MessagePage(MessageView{
		Page:       testPage(),
		HeadingKey: "error.screen_expired",
		LinkURL:    "/products",
		LinkKey:    "action.reload",
	})))
	links := findAll(findByID(doc, "main"), "a")
	if len(links) != 1 || attr(links[0], "href") != "/products" {
		t.Fatalf("links = %v", links)
	}
}

func TestFullTitle(t *testing.T) {
	t.Parallel()

	if got := (PageContext{}).FullTitle(); got != AppName {
		t.Fatalf("FullTitle() = %q", got)
	}
	if got := (PageContext{Title: "Carts"}).FullTitle(); got != "Carts · MegaMix" {
		t.Fatalf("FullTitle() = %q", got)
	}
}
