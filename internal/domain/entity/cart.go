package entity

import "time"

// CartItem is one line in the live cart or, once the order is placed, one
// immutable order line.
type CartItem struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Variant    string `json:"variant,omitempty"` // Weight/variant label, empty for single-variant products.
	UnitPrice  int64  `json:"unit_price"`        // Minor currency units at the time of the cart mutation.
	Quantity   int    `json:"quantity"`
	Discounted bool   `json:"discounted"` // Line priced through a batch discount; excluded from commission base.
}

// Subtotal returns unit price times quantity.
func (i CartItem) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Cart is the customer's live cart. It lives on the customer aggregate so a
// resumed conversation always sees the persisted state, never a stale copy.
type Cart struct {
	Items        []CartItem `json:"items,omitempty"`
	DeliveryType string     `json:"delivery_type,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Total sums all line subtotals.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal()
	}

	return total
}

// DiscountedTotal sums the subtotals of discounted lines only.
func (c *Cart) DiscountedTotal() int64 {
	var total int64
	for _, item := range c.Items {
		if item.Discounted {
			total += item.Subtotal()
		}
	}

	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Add merges the item into an existing line with the same product and
// variant, or appends a new line.
func (c *Cart) Add(item CartItem, now time.Time) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && c.Items[i].Variant == item.Variant {
			c.Items[i].Quantity += item.Quantity
			c.Items[i].UnitPrice = item.UnitPrice
			c.UpdatedAt = now

			return
		}
	}

	c.Items = append(c.Items, item)
	c.UpdatedAt = now
}

// RemoveAt drops the line at the given zero-based index. Out-of-range
// indexes are ignored.
func (c *Cart) RemoveAt(index int, now time.Time) {
	if index < 0 || index >= len(c.Items) {
		return
	}

	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	c.UpdatedAt = now
}

// Clear empties the cart and resets the delivery selection.
func (c *Cart) Clear(now time.Time) {
	c.Items = nil
	c.DeliveryType = ""
	c.UpdatedAt = now
}
