package storestub

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/louisbranch/megamix/internal/storefront"
)

//go:embed fixtures.json
var fixturesJSON []byte

// Fixtures is the seed data a stub starts from.
type Fixtures struct {
	Products []storefront.Product `json:"products"`
	Carts    []storefront.Cart    `json:"carts"`
	Users    []storefront.User    `json:"users"`
}

// DefaultFixtures decodes the embedded seed data. Each call returns fresh
// slices.
func DefaultFixtures() (Fixtures, error) {
	var f Fixtures
	if err := json.Unmarshal(fixturesJSON, &f); err != nil {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return f, nil
}

type record interface {
	Key() int
}

// collection holds one resource in memory. Ids are assigned after the
// highest seeded id and never reused.
type collection[T record] struct {
	mu     sync.Mutex
	items  map[int]T
	nextID int
	withID func(T, int) T
}

func newCollection[T record](seed []T, withID func(T, int) T) *collection[T] {
	c := &collection[T]{items: make(map[int]T, len(seed)), nextID: 1, withID: withID}
	for _, item := range seed {
		c.items[item.Key()] = item
		if item.Key() >= c.nextID {
			c.nextID = item.Key() + 1
		}
	}
	return c
}

func (c *collection[T]) list() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]int, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	out := make([]T, 0, len(keys))
	for _, key := range keys {
		out = append(out, c.items[key])
	}
	return out
}

func (c *collection[T]) get(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[id]
	return item, ok
}

func (c *collection[T]) create(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	item = c.withID(item, c.nextID)
	c.items[c.nextID] = item
	c.nextID++
	return item
}

// update decodes patch over the stored record, so omitted fields keep their
// current values.
func (c *collection[T]) update(id int, patch []byte) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	// Decode over a deep copy; slices in current must not be reused.
	base, err := json.Marshal(current)
	if err != nil {
		return current, true, err
	}
	var merged T
	if err := json.Unmarshal(base, &merged); err != nil {
		return current, true, err
	}
	if err := json.Unmarshal(patch, &merged); err != nil {
		return current, true, err
	}
	merged = c.withID(merged, id)
	c.items[id] = merged
	return merged, true, nil
}

func (c *collection[T]) remove(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[id]
	if ok {
		delete(c.items, id)
	}
	return item, ok
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func productWithID(p storefront.Product, id int) storefront.Product {
	p.ID = id
	return p
}

func cartWithID(c storefront.Cart, id int) storefront.Cart {
	c.ID = id
	return c
}

func userWithID(u storefront.User, id int) storefront.User {
	u.ID = id
	return u
}
