package routepath

import (
	"net/url"
	"strconv"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	DashboardContent = "/dashboard/content"
)

const (
	Login  = "/login"
	Logout = "/logout"
)

const (
	Products           = "/products"
	ProductsTable      = "/products/table"
	ProductsDelete     = "/products/delete"
	ProductsNew        = "/products/new"
	ProductsEdit       = "/products/edit"
	ProductsFormField  = "/products/form/field"
	ProductsFormSubmit = "/products/form/submit"
)

const (
	Carts               = "/carts"
	CartsTable          = "/carts/table"
	CartsDelete         = "/carts/delete"
	CartsNew            = "/carts/new"
	CartsEdit           = "/carts/edit"
	CartsFormField      = "/carts/form/field"
	CartsFormItemAdd    = "/carts/form/items/add"
	CartsFormItemRemove = "/carts/form/items/remove"
	CartsFormSubmit     = "/carts/form/submit"
)

const (
	Users           = "/users"
	UsersTable      = "/users/table"
	UsersDelete     = "/users/delete"
	UsersNew        = "/users/new"
	UsersEdit       = "/users/edit"
	UsersFormField  = "/users/form/field"
	UsersFormSubmit = "/users/form/submit"
)

// Form and query parameter names shared by screens.
const (
	ParamID     = "id"
	ParamScreen = "screen"
	ParamField  = "field"
	ParamValue  = "value"
	ParamIndex  = "index"
)

func ProductEdit(id int) string {
	return withID(ProductsEdit, id)
}

func CartEdit(id int) string {
	return withID(CartsEdit, id)
}

func UserEdit(id int) string {
	return withID(UsersEdit, id)
}

func withID(path string, id int) string {
	return path + "?" + url.Values{ParamID: {strconv.Itoa(id)}}.Encode()
}
