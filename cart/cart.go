// Package cart holds the in-progress order's line items. A cart lives only
// as long as the client session that owns it; nothing is persisted.
package cart

import (
	"github.com/indunissanka/qbread/models"
	"github.com/shopspring/decimal"
)

type Item struct {
	Product  models.Product
	Quantity int
}

// Cart is an insertion-ordered mapping from product id to quantity with the
// product snapshot taken at add time. Not safe for concurrent use; a cart is
// owned by a single session.
type Cart struct {
	order   []uint
	entries map[uint]*Item
}

func New() *Cart {
	return &Cart{entries: make(map[uint]*Item)}
}

// AddItem increments the product's quantity, inserting it at quantity 1 when
// absent.
func (c *Cart) AddItem(product models.Product) {
	if item, ok := c.entries[product.ID]; ok {
		item.Quantity++
		return
	}
	c.entries[product.ID] = &Item{Product: product, Quantity: 1}
	c.order = append(c.order, product.ID)
}

// RemoveItem deletes the entry entirely.
func (c *Cart) RemoveItem(productID uint) {
	if _, ok := c.entries[productID]; !ok {
		return
	}
	delete(c.entries, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// UpdateQuantity sets the quantity verbatim. A quantity of zero keeps the
// entry; RemoveItem is the only way to drop one.
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	if item, ok := c.entries[productID]; ok {
		item.Quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.order = nil
	c.entries = make(map[uint]*Item)
}

// Items returns the entries in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.entries[id])
	}
	return items
}

func (c *Cart) Len() int {
	return len(c.entries)
}

// Total recomputes the sum of price times quantity on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, id := range c.order {
		item := c.entries[id]
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
