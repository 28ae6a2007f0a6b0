package templates

import (
	"strconv"

	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/storefront"
)

// FieldView renders one labelled input with its validation messages.
type FieldView struct {
	Loc       Localizer
	Name      string
	LabelKey  string
	Value     string
	Type      string
	Step      string
	Multiline bool
	// Endpoint receives per-field edits; empty disables live validation.
	Endpoint string
	Errors   []string
}

// Invalid reports whether the field carries messages.
func (f FieldView) Invalid() bool {
	return len(f.Errors) > 0
}

func fieldEndpoint(base, name string) string {
	return base + "?" + routepath.ParamField + "=" + name
}

// DashboardView is the dashboard shell rendered before totals load.
type DashboardView struct {
	Page PageContext
}

// DashboardContentView holds the loaded dashboard totals.
type DashboardContentView struct {
	Page     PageContext
	Summary  storefront.Summary
	Failed   bool
	Activity []ActivityRow
}

// ActivityRow is one recent remote mutation.
type ActivityRow struct {
	When        string
	ResourceKey string
	ActionKey   string
	OutcomeKey  string
	TargetID    string
	Failed      bool
}

// LoginView is the sign-in form.
type LoginView struct {
	Page   PageContext
	Fields []FieldView
}

// NewLoginView builds the sign-in form. The password is never echoed back.
func NewLoginView(page PageContext, draft form.LoginDraft, errs form.FieldErrors) LoginView {
	return LoginView{
		Page: page,
		Fields: []FieldView{
			{Loc: page.Loc, Name: form.FieldUsername, LabelKey: "field.username", Value: draft.Username, Type: "text", Errors: errs.Get(form.FieldUsername)},
			{Loc: page.Loc, Name: form.FieldPassword, LabelKey: "field.password", Type: "password", Errors: errs.Get(form.FieldPassword)},
		},
	}
}

// ListView is the shell of a resource list; the table loads separately.
type ListView struct {
	Page       PageContext
	HeadingKey string
	NewURL     string
	NewKey     string
	TableID    string
	TableURL   string
}

// ProductRow is a formatted product table row.
type ProductRow struct {
	ID          int
	Title       string
	Description string
	Category    string
	Image       string
	Price       string
	Rating      string
	EditURL     string
}

// ProductTableView is the loaded product table.
type ProductTableView struct {
	Page     PageContext
	ScreenID string
	Rows     []ProductRow
	Empty    bool
}

// CartRow is a formatted cart table row.
type CartRow struct {
	ID      int
	UserID  int
	Date    string
	Items   int
	Units   int
	EditURL string
}

// CartTableView is the loaded cart table.
type CartTableView struct {
	Page     PageContext
	ScreenID string
	Rows     []CartRow
	Empty    bool
}

// UserRow is a formatted user table row.
type UserRow struct {
	ID       int
	FullName string
	Username string
	Email    string
	Phone    string
	Address  string
	Geo      string
	EditURL  string
}

// UserTableView is the loaded user table.
type UserTableView struct {
	Page     PageContext
	ScreenID string
	Rows     []UserRow
	Empty    bool
}

// FormView is shared by the product and user editors.
type FormView struct {
	Page       PageContext
	ScreenID   string
	HeadingKey string
	SubmitKey  string
	SubmitURL  string
	BackURL    string
	Fields     []FieldView
	// Preview is an image shown beside the form, when set.
	Preview string
}

// NewProductFormView builds the product editor form.
func NewProductFormView(page PageContext, screenID string, editing bool, draft form.ProductDraft, errs form.FieldErrors) FormView {
	endpoint := func(name string) string { return fieldEndpoint(routepath.ProductsFormField, name) }
	price := ""
	if draft.Price != 0 {
		price = form.FormatNumber(draft.Price)
	}
	view := FormView{
		Page:       page,
		ScreenID:   screenID,
		HeadingKey: "products.new",
		SubmitKey:  "action.create",
		SubmitURL:  routepath.ProductsFormSubmit,
		BackURL:    routepath.Products,
		Preview:    draft.Image,
		Fields: []FieldView{
			{Name: form.FieldTitle, LabelKey: "field.title", Value: draft.Title, Type: "text"},
			{Name: form.FieldPrice, LabelKey: "field.price", Value: price, Type: "number", Step: "0.01"},
			{Name: form.FieldDescription, LabelKey: "field.description", Value: draft.Description, Multiline: true},
			{Name: form.FieldCategory, LabelKey: "field.category", Value: draft.Category, Type: "text"},
			{Name: form.FieldImage, LabelKey: "field.image", Value: draft.Image, Type: "url"},
		},
	}
	if editing {
		view.HeadingKey = "products.edit"
		view.SubmitKey = "action.save"
	}
	for i := range view.Fields {
		view.Fields[i].Loc = page.Loc
		view.Fields[i].Endpoint = endpoint(view.Fields[i].Name)
		view.Fields[i].Errors = errs.Get(view.Fields[i].Name)
	}
	return view
}

// NewUserFormView builds the user editor form.
func NewUserFormView(page PageContext, screenID string, editing bool, draft form.UserDraft, errs form.FieldErrors) FormView {
	view := FormView{
		Page:       page,
		ScreenID:   screenID,
		HeadingKey: "users.new",
		SubmitKey:  "action.create",
		SubmitURL:  routepath.UsersFormSubmit,
		BackURL:    routepath.Users,
		Fields: []FieldView{
			{Name: form.FieldUsername, LabelKey: "field.username", Value: draft.Username, Type: "text"},
			{Name: form.FieldEmail, LabelKey: "field.email", Value: draft.Email, Type: "email"},
			{Name: form.FieldPassword, LabelKey: "field.password", Value: draft.Password, Type: "password"},
			{Name: form.FieldFirstname, LabelKey: "field.firstname", Value: draft.Firstname, Type: "text"},
			{Name: form.FieldLastname, LabelKey: "field.lastname", Value: draft.Lastname, Type: "text"},
			{Name: form.FieldPhone, LabelKey: "field.phone", Value: draft.Phone, Type: "tel"},
			{Name: form.FieldCity, LabelKey: "field.city", Value: draft.City, Type: "text"},
			{Name: form.FieldStreet, LabelKey: "field.street", Value: draft.Street, Type: "text"},
			{Name: form.FieldNumber, LabelKey: "field.number", Value: draft.Number, Type: "number", Step: "1"},
			{Name: form.FieldZipcode, LabelKey: "field.zipcode", Value: draft.Zipcode, Type: "text"},
			{Name: form.FieldLat, LabelKey: "field.lat", Value: draft.Lat, Type: "text"},
			{Name: form.FieldLong, LabelKey: "field.long", Value: draft.Long, Type: "text"},
		},
	}
	if editing {
		view.HeadingKey = "users.edit"
		view.SubmitKey = "action.save"
	}
	for i := range view.Fields {
		view.Fields[i].Loc = page.Loc
		view.Fields[i].Endpoint = fieldEndpoint(routepath.UsersFormField, view.Fields[i].Name)
		view.Fields[i].Errors = errs.Get(view.Fields[i].Name)
	}
	return view
}

// CartItemRow is one line item in the cart editor.
type CartItemRow struct {
	Index     int
	ProductID int
	Quantity  int
}

// CartFormView is the cart editor with its add-item sub-form.
type CartFormView struct {
	Page          PageContext
	ScreenID      string
	HeadingKey    string
	SubmitKey     string
	SubmitURL     string
	AddURL        string
	RemoveURL     string
	BackURL       string
	UserField     FieldView
	ItemsErrors   FieldView
	Items         []CartItemRow
	ProductField  FieldView
	QuantityField FieldView
}

// PendingItem carries add-item input that has not been accepted yet.
type PendingItem struct {
	ProductID string
	Quantity  string
}

// NewCartFormView builds the cart editor.
func NewCartFormView(page PageContext, screenID string, editing bool, draft form.CartDraft, errs, itemErrs form.FieldErrors, pending PendingItem) CartFormView {
	userID := ""
	if draft.UserID != 0 {
		userID = strconv.Itoa(draft.UserID)
	}
	view := CartFormView{
		Page:       page,
		ScreenID:   screenID,
		HeadingKey: "carts.new",
		SubmitKey:  "action.create",
		SubmitURL:  routepath.CartsFormSubmit,
		AddURL:     routepath.CartsFormItemAdd,
		RemoveURL:  routepath.CartsFormItemRemove,
		BackURL:    routepath.Carts,
		UserField: FieldView{
			Loc: page.Loc, Name: form.FieldUserID, LabelKey: "field.user_id", Value: userID,
			Type: "number", Step: "1", Errors: errs.Get(form.FieldUserID),
			Endpoint: fieldEndpoint(routepath.CartsFormField, form.FieldUserID),
		},
		ItemsErrors: FieldView{Loc: page.Loc, Name: form.FieldProducts, Errors: errs.Get(form.FieldProducts)},
		ProductField: FieldView{
			Loc: page.Loc, Name: form.FieldProductID, LabelKey: "field.product_id", Value: pending.ProductID,
			Type: "number", Step: "1", Errors: itemErrs.Get(form.FieldProductID),
		},
		QuantityField: FieldView{
			Loc: page.Loc, Name: form.FieldQuantity, LabelKey: "field.quantity", Value: pending.Quantity,
			Type: "number", Step: "1", Errors: itemErrs.Get(form.FieldQuantity),
		},
	}
	if editing {
		view.HeadingKey = "carts.edit"
		view.SubmitKey = "action.save"
	}
	for i, item := range draft.Items {
		view.Items = append(view.Items, CartItemRow{Index: i, ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return view
}

// MessageView is a standalone message page with one follow-up link.
type MessageView struct {
	Page       PageContext
	HeadingKey string
	BodyKey    string
	LinkURL    string
	LinkKey    string
}
