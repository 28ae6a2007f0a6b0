// Package storage defines persistence contracts for the admin console's own
// records: login audit and the activity feed shown on the dashboard.
//
// The storefront API remains the system of record for products, carts and
// users; nothing here caches them.
package storage
