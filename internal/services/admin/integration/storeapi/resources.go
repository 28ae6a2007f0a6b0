package storeapi

import (
	"context"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/louisbranch/megamix/internal/platform/errors"
	"github.com/louisbranch/megamix/internal/storefront"
)

func itemPath(resource string, id int) string {
	return "/" + resource + "/" + strconv.Itoa(id)
}

// ListProducts returns every product.
func (c *Client) ListProducts(ctx context.Context, token string) ([]storefront.Product, error) {
	var out []storefront.Product
	err := c.do(ctx, call{span: "storeapi.Products.List", method: http.MethodGet, route: "/products", path: "/products", token: token}, &out)
	return out, err
}

// GetProduct returns one product.
func (c *Client) GetProduct(ctx context.Context, token string, id int) (storefront.Product, error) {
	var out storefront.Product
	err := c.do(ctx, call{span: "storeapi.Products.Get", method: http.MethodGet, route: "/products/{id}", path: itemPath("products", id), token: token, requireBody: true}, &out)
	return out, err
}

// CreateProduct creates a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, token string, p storefront.Product) (storefront.Product, error) {
	var out storefront.Product
	err := c.do(ctx, call{span: "storeapi.Products.Create", method: http.MethodPost, route: "/products", path: "/products", token: token, body: p, requireBody: true}, &out)
	return out, err
}

// UpdateProduct replaces product id.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int, p storefront.Product) (storefront.Product, error) {
	p.ID = id
	var out storefront.Product
	err := c.do(ctx, call{span: "storeapi.Products.Update", method: http.MethodPut, route: "/products/{id}", path: itemPath("products", id), token: token, body: p, requireBody: true}, &out)
	return out, err
}

// RemoveProduct deletes product id.
func (c *Client) RemoveProduct(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{span: "storeapi.Products.Remove", method: http.MethodDelete, route: "/products/{id}", path: itemPath("products", id), token: token, requireBody: true}, nil)
}

// Categories returns the distinct product categories.
func (c *Client) Categories(ctx context.Context, token string) ([]string, error) {
	var out []string
	err := c.do(ctx, call{span: "storeapi.Products.Categories", method: http.MethodGet, route: "/products/categories", path: "/products/categories", token: token}, &out)
	return out, err
}

// ListCarts returns every cart.
func (c *Client) ListCarts(ctx context.Context, token string) ([]storefront.Cart, error) {
	var out []storefront.Cart
	err := c.do(ctx, call{span: "storeapi.Carts.List", method: http.MethodGet, route: "/carts", path: "/carts", token: token}, &out)
	return out, err
}

// GetCart returns one cart.
func (c *Client) GetCart(ctx context.Context, token string, id int) (storefront.Cart, error) {
	var out storefront.Cart
	err := c.do(ctx, call{span: "storeapi.Carts.Get", method: http.MethodGet, route: "/carts/{id}", path: itemPath("carts", id), token: token, requireBody: true}, &out)
	return out, err
}

// CreateCart creates a cart.
func (c *Client) CreateCart(ctx context.Context, token string, cart storefront.Cart) (storefront.Cart, error) {
	var out storefront.Cart
	err := c.do(ctx, call{span: "storeapi.Carts.Create", method: http.MethodPost, route: "/carts", path: "/carts", token: token, body: cart, requireBody: true}, &out)
	return out, err
}

// UpdateCart replaces cart id.
func (c *Client) UpdateCart(ctx context.Context, token string, id int, cart storefront.Cart) (storefront.Cart, error) {
	cart.ID = id
	var out storefront.Cart
	err := c.do(ctx, call{span: "storeapi.Carts.Update", method: http.MethodPut, route: "/carts/{id}", path: itemPath("carts", id), token: token, body: cart, requireBody: true}, &out)
	return out, err
}

// RemoveCart deletes cart id.
func (c *Client) RemoveCart(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{span: "storeapi.Carts.Remove", method: http.MethodDelete, route: "/carts/{id}", path: itemPath("carts", id), token: token, requireBody: true}, nil)
}

// ListUsers returns every user.
func (c *Client) ListUsers(ctx context.Context, token string) ([]storefront.User, error) {
	var out []storefront.User
	err := c.do(ctx, call{span: "storeapi.Users.List", method: http.MethodGet, route: "/users", path: "/users", token: token}, &out)
	return out, err
}

// GetUser returns one user.
func (c *Client) GetUser(ctx context.Context, token string, id int) (storefront.User, error) {
	var out storefront.User
	err := c.do(ctx, call{span: "storeapi.Users.Get", method: http.MethodGet, route: "/users/{id}", path: itemPath("users", id), token: token, requireBody: true}, &out)
	return out, err
}

// CreateUser creates a user.
func (c *Client) CreateUser(ctx context.Context, token string, u storefront.User) (storefront.User, error) {
	var out storefront.User
	err := c.do(ctx, call{span: "storeapi.Users.Create", method: http.MethodPost, route: "/users", path: "/users", token: token, body: u, requireBody: true}, &out)
	return out, err
}

// UpdateUser replaces user id.
func (c *Client) UpdateUser(ctx context.Context, token string, id int, u storefront.User) (storefront.User, error) {
	u.ID = id
	var out storefront.User
	err := c.do(ctx, call{span: "storeapi.Users.Update", method: http.MethodPut, route: "/users/{id}", path: itemPath("users", id), token: token, body: u, requireBody: true}, &out)
	return out, err
}

// RemoveUser deletes user id.
func (c *Client) RemoveUser(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{span: "storeapi.Users.Remove", method: http.MethodDelete, route: "/users/{id}", path: itemPath("users", id), token: token, requireBody: true}, nil)
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds storefront.Credentials) (string, error) {
	var out loginResponse
	err := c.do(ctx, call{span: "storeapi.Auth.Login", method: http.MethodPost, route: "/auth/login", path: "/auth/login", body: creds, requireBody: true}, &out)
	if apperrors.HasCode(err, apperrors.CodeUnauthenticated) || apperrors.HasCode(err, apperrors.CodeStoreRejected) {
		return "", apperrors.Wrap(apperrors.CodeInvalidCredentials, "login rejected", err)
	}
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Summary counts products, categories, carts and users concurrently. The
// first failure cancels the rest.
func (c *Client) Summary(ctx context.Context, token string) (storefront.Summary, error) {
	var summary storefront.Summary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := c.ListProducts(gctx, token)
		summary.Products = len(products)
		return err
	})
	g.Go(func() error {
		categories, err := c.Categories(gctx, token)
		summary.Categories = len(categories)
		return err
	})
	g.Go(func() error {
		carts, err := c.ListCarts(gctx, token)
		summary.Carts = len(carts)
		return err
	})
	g.Go(func() error {
		users, err := c.ListUsers(gctx, token)
		summary.Users = len(users)
		return err
	})
	if err := g.Wait(); err != nil {
		return storefront.Summary{}, err
	}
	return summary, nil
}
