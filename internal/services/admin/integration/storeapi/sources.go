package storeapi

import (
	"context"

	"github.com/louisbranch/megamix/internal/storefront"
)

// ProductSource binds the product endpoints to one session token.
type ProductSource struct {
	client *Client
	token  string
}

// Products returns the product endpoints for token.
func (c *Client) Products(token string) ProductSource {
	return ProductSource{client: c, token: token}
}

func (s ProductSource) List(ctx context.Context) ([]storefront.Product, error) {
	return s.client.ListProducts(ctx, s.token)
}

func (s ProductSource) Remove(ctx context.Context, id int) error {
	return s.client.RemoveProduct(ctx, s.token, id)
}

func (s ProductSource) Get(ctx context.Context, id int) (storefront.Product, error) {
	return s.client.GetProduct(ctx, s.token, id)
}

func (s ProductSource) Create(ctx context.Context, p storefront.Product) (storefront.Product, error) {
	return s.client.CreateProduct(ctx, s.token, p)
}

func (s ProductSource) Update(ctx context.Context, id int, p storefront.Product) (storefront.Product, error) {
	return s.client.UpdateProduct(ctx, s.token, id, p)
}

// CartSource binds the cart endpoints to one session token.
type CartSource struct {
	client *Client
	token  string
}

// Carts returns the cart endpoints for token.
func (c *Client) Carts(token string) CartSource {
	return CartSource{client: c, token: token}
}

func (s CartSource) List(ctx context.Context) ([]storefront.Cart, error) {
	return s.client.ListCarts(ctx, s.token)
}

func (s CartSource) Remove(ctx context.Context, id int) error {
	return s.client.RemoveCart(ctx, s.token, id)
}

func (s CartSource) Get(ctx context.Context, id int) (storefront.Cart, error) {
	return s.client.GetCart(ctx, s.token, id)
}

func (s CartSource) Create(ctx context.Context, cart storefront.Cart) (storefront.Cart, error) {
	return s.client.CreateCart(ctx, s.token, cart)
}

func (s CartSource) Update(ctx context.Context, id int, cart storefront.Cart) (storefront.Cart, error) {
	return s.client.UpdateCart(ctx, s.token, id, cart)
}

// UserSource binds the user endpoints to one session token.
type UserSource struct {
	client *Client
	token  string
}

// Users returns the user endpoints for token.
func (c *Client) Users(token string) UserSource {
	return UserSource{client: c, token: token}
}

func (s UserSource) List(ctx context.Context) ([]storefront.User, error) {
	return s.client.ListUsers(ctx, s.token)
}

func (s UserSource) Remove(ctx context.Context, id int) error {
	return s.client.RemoveUser(ctx, s.token, id)
}

func (s UserSource) Get(ctx context.Context, id int) (storefront.User, error) {
	return s.client.GetUser(ctx, s.token, id)
}

func (s UserSource) Create(ctx context.Context, u storefront.User) (storefront.User, error) {
	return s.client.CreateUser(ctx, s.token, u)
}

func (s UserSource) Update(ctx context.Context, id int, u storefront.User) (storefront.User, error) {
	return s.client.UpdateUser(ctx, s.token, id, u)
}
