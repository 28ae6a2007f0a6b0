// Package admin implements the MegaMix storefront admin console.
//
// It serves server-rendered screens for products, carts and users backed by a
// FakeStore-compatible API, and keeps a local activity log of the mutations
// operators make through it.
package admin
