// Package storefront defines the records exchanged with the storefront API.
//
// Field names and JSON tags follow the remote authority's wire shape; the
// admin console never stores these records durably.
package storefront

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format carts are exchanged with.
const DateLayout = "2006-01-02"

// Product is one catalog item.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating aggregates customer reviews for a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Key returns the product identifier.
func (p Product) Key() int { return p.ID }

// Cart is a shopping cart owned by one user.
type Cart struct {
	ID       int        `json:"id"`
	UserID   int        `json:"userId"`
	Date     string     `json:"date"`
	Products []LineItem `json:"products"`
}

// LineItem is one product entry in a cart.
type LineItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Key returns the cart identifier.
func (c Cart) Key() int { return c.ID }

// Units returns the total quantity across all line items.
func (c Cart) Units() int {
	total := 0
	for _, item := range c.Products {
		total += item.Quantity
	}
	return total
}

// User is a storefront customer account.
type User struct {
	ID       int     `json:"id"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Password string  `json:"password,omitempty"`
	Name     Name    `json:"name"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
}

// Key returns the user identifier.
func (u User) Key() int { return u.ID }

// Name is a user's personal name.
type Name struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Full joins first and last name, skipping blanks.
func (n Name) Full() string {
	return strings.TrimSpace(strings.TrimSpace(n.Firstname) + " " + strings.TrimSpace(n.Lastname))
}

// Address is a user's postal address.
type Address struct {
	City        string      `json:"city"`
	Street      string      `json:"street"`
	Number      int         `json:"number"`
	Zipcode     string      `json:"zipcode"`
	Geolocation Geolocation `json:"geolocation"`
}

// Geolocation holds coordinates as the API sends them, as decimal strings.
type Geolocation struct {
	Lat  string `json:"lat"`
	Long string `json:"long"`
}

// Credentials are the login inputs forwarded to the storefront API.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Summary holds the dashboard totals.
type Summary struct {
	Products   int
	Categories int
	Carts      int
	Users      int
}

// Today formats now as a cart date.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
