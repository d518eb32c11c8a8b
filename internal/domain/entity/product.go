package entity

import "time"

// Category is one node of the catalog tree. Top-level categories have an
// empty ParentID.
type Category struct {
	ID        string `json:"id"`
	ParentID  string `json:"parent_id,omitempty"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

// Variant is one weight/size option of a product with its own price.
type Variant struct {
	Label string `json:"label"` // e.g. "1kg", "5kg"
	Price int64  `json:"price"`
}

// Product is a purchasable catalog item. Stock and price are always read
// live at the point of cart mutation and checkout commit, never cached in
// conversation state.
type Product struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"` // Base price when the product has no variants.
	Stock       int       `json:"stock"`
	Variants    []Variant `json:"variants,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Variant returns the variant with the given label, or nil.
func (p *Product) Variant(label string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].Label == label {
			return &p.Variants[i]
		}
	}

	return nil
}

// PriceFor returns the effective unit price for a variant label, falling
// back to the base price when the label is empty or unknown.
func (p *Product) PriceFor(variantLabel string) int64 {
	if v := p.Variant(variantLabel); v != nil {
		return v.Price
	}

	return p.Price
}
