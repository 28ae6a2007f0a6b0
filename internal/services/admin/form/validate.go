package form

import (
	"math"
	"net/mail"
	"slices"
	"strconv"
	"strings"

	"github.com/louisbranch/megamix/internal/storefront"
)

// ProductDraft is the editable state of a product form.
type ProductDraft struct {
	Title       string
	Price       float64
	Description string
	Category    string
	Image       string
}

// ProductDraftFrom seeds a draft from a fetched product.
func ProductDraftFrom(p storefront.Product) ProductDraft {
	return ProductDraft{
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
}

// ValidateProduct checks that every field is present and the price is a
// positive number. The returned product is only meaningful when errs.Valid().
func ValidateProduct(d ProductDraft) (storefront.Product, FieldErrors) {
	errs := NewFieldErrors(ProductFields...)
	out := storefront.Product{
		Title:       strings.TrimSpace(d.Title),
		Price:       d.Price,
		Description: strings.TrimSpace(d.Description),
		Category:    strings.TrimSpace(d.Category),
		Image:       strings.TrimSpace(d.Image),
	}

	requireText(errs, FieldTitle, out.Title)
	requireText(errs, FieldDescription, out.Description)
	requireText(errs, FieldCategory, out.Category)
	if requireText(errs, FieldImage, out.Image) && strings.ContainsAny(out.Image, " \t\r\n") {
		errs.Add(FieldImage, MsgImageURI)
	}
	if math.IsNaN(d.Price) || math.IsInf(d.Price, 0) || d.Price <= 0 {
		errs.Add(FieldPrice, MsgPricePositive)
	}
	return out, errs
}

// LoginDraft is the editable state of the login form.
type LoginDraft struct {
	Username string
	Password string
}

// ValidateLogin requires a username and password.
func ValidateLogin(d LoginDraft) (storefront.Credentials, FieldErrors) {
	errs := NewFieldErrors(LoginFields...)
	out := storefront.Credentials{
		Username: strings.TrimSpace(d.Username),
		// Passwords are forwarded verbatim.
		Password: d.Password,
	}
	requireText(errs, FieldUsername, out.Username)
	requireText(errs, FieldPassword, strings.TrimSpace(out.Password))
	return out, errs
}

// CartDraft is the editable state of a cart form.
type CartDraft struct {
	UserID int
	Items  []storefront.LineItem
}

// CartDraftFrom seeds a draft from a fetched cart.
func CartDraftFrom(c storefront.Cart) CartDraft {
	return CartDraft{
		UserID: c.UserID,
		Items:  append([]storefront.LineItem(nil), c.Products...),
	}
}

// ValidateCart requires a positive user id and at least one valid line item.
// The returned cart carries no date; the caller stamps it on submit.
func ValidateCart(d CartDraft) (storefront.Cart, FieldErrors) {
	errs := NewFieldErrors(CartFields...)
	if d.UserID <= 0 {
		errs.Add(FieldUserID, MsgCartUserID)
	}
	if len(d.Items) == 0 {
		errs.Add(FieldProducts, MsgCartItemsRequired)
	}
	for _, item := range d.Items {
		_, itemErrs := ValidateLineItem(item.ProductID, item.Quantity)
		if itemErrs.Has(FieldProductID) && !slices.Contains(errs.Get(FieldProducts), MsgLineItemProduct) {
			errs.Add(FieldProducts, MsgLineItemProduct)
		}
		if itemErrs.Has(FieldQuantity) && !slices.Contains(errs.Get(FieldProducts), MsgLineItemQuantity) {
			errs.Add(FieldProducts, MsgLineItemQuantity)
		}
	}
	return storefront.Cart{
		UserID:   d.UserID,
		Products: append([]storefront.LineItem(nil), d.Items...),
	}, errs
}

// ValidateLineItem checks one entry of the add-item sub-form.
func ValidateLineItem(productID, quantity int) (storefront.LineItem, FieldErrors) {
	errs := NewFieldErrors(LineItemFields...)
	if productID <= 0 {
		errs.Add(FieldProductID, MsgLineItemProduct)
	}
	if quantity <= 0 {
		errs.Add(FieldQuantity, MsgLineItemQuantity)
	}
	return storefront.LineItem{ProductID: productID, Quantity: quantity}, errs
}

// UserDraft is the editable state of a user form. Number and coordinates
// stay as typed until validation.
type UserDraft struct {
	Username  string
	Email     string
	Password  string
	Firstname string
	Lastname  string
	Phone     string
	City      string
	Street    string
	Number    string
	Zipcode   string
	Lat       string
	Long      string
}

// UserDraftFrom seeds a draft from a fetched user.
func UserDraftFrom(u storefront.User) UserDraft {
	d := UserDraft{
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		Firstname: u.Name.Firstname,
		Lastname:  u.Name.Lastname,
		Phone:     u.Phone,
		City:      u.Address.City,
		Street:    u.Address.Street,
		Zipcode:   u.Address.Zipcode,
		Lat:       u.Address.Geolocation.Lat,
		Long:      u.Address.Geolocation.Long,
	}
	if u.Address.Number != 0 {
		d.Number = strconv.Itoa(u.Address.Number)
	}
	return d
}

// ValidateUser requires account and name fields, a well-formed email, and
// numeric address parts when they are given.
func ValidateUser(d UserDraft) (storefront.User, FieldErrors) {
	errs := NewFieldErrors(UserFields...)
	out := storefront.User{
		Username: strings.TrimSpace(d.Username),
		Email:    strings.TrimSpace(d.Email),
		Password: d.Password,
		Name: storefront.Name{
			Firstname: strings.TrimSpace(d.Firstname),
			Lastname:  strings.TrimSpace(d.Lastname),
		},
		Address: storefront.Address{
			City:    strings.TrimSpace(d.City),
			Street:  strings.TrimSpace(d.Street),
			Zipcode: strings.TrimSpace(d.Zipcode),
			Geolocation: storefront.Geolocation{
				Lat:  strings.TrimSpace(d.Lat),
				Long: strings.TrimSpace(d.Long),
			},
		},
		Phone: strings.TrimSpace(d.Phone),
	}

	requireText(errs, FieldUsername, out.Username)
	requireText(errs, FieldPassword, strings.TrimSpace(out.Password))
	requireText(errs, FieldFirstname, out.Name.Firstname)
	requireText(errs, FieldLastname, out.Name.Lastname)
	if requireText(errs, FieldEmail, out.Email) {
		addr, err := mail.ParseAddress(out.Email)
		if err != nil || addr.Address != out.Email {
			errs.Add(FieldEmail, MsgEmail)
		}
	}
	if number := strings.TrimSpace(d.Number); number != "" {
		value, err := strconv.Atoi(number)
		if err != nil || value < 0 {
			errs.Add(FieldNumber, MsgNumberNonNegative)
		} else {
			out.Address.Number = value
		}
	}
	checkCoordinate(errs, FieldLat, out.Address.Geolocation.Lat, 90)
	checkCoordinate(errs, FieldLong, out.Address.Geolocation.Long, 180)
	return out, errs
}

// requireText adds a required error when value is empty and reports whether
// the value was present.
func requireText(errs FieldErrors, field, value string) bool {
	if value == "" {
		errs.Add(field, MsgRequired)
		return false
	}
	return true
}

func checkCoordinate(errs FieldErrors, field, value string, limit float64) {
	if value == "" {
		return
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.Abs(parsed) > limit {
		errs.Add(field, MsgCoordinate)
	}
}
