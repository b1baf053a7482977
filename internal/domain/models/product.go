package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductID is the sequential identity of a catalog entry.
type ProductID int

// Product captures the pricing and sizing facts of a sellable item.
// Two products are the same product when their IDs match, whatever the
// other fields say.
type Product struct {
	ID            ProductID
	Name          string
	PurchasePrice decimal.Decimal
	SellPrice     decimal.Decimal
	Space         decimal.Decimal
}

// Equal reports whether both values denote the same catalog entry.
func (p Product) Equal(other Product) bool {
	return p.ID == other.ID
}

// Margin is the per-unit profit.
func (p Product) Margin() decimal.Decimal {
	return p.SellPrice.Sub(p.PurchasePrice)
}

// MarginPercentage is the margin relative to the purchase price. It is zero
// for products bought for free.
func (p Product) MarginPercentage() decimal.Decimal {
	if p.PurchasePrice.IsZero() {
		return decimal.Zero
	}
	return p.Margin().Div(p.PurchasePrice)
}

// SellValueFor returns what a customer pays for quantity units.
func (p Product) SellValueFor(quantity int) decimal.Decimal {
	return p.SellPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// PurchaseCostFor returns what the shop pays a supplier for quantity units.
func (p Product) PurchaseCostFor(quantity int) decimal.Decimal {
	return p.PurchasePrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// SpaceFor returns the warehouse space taken by quantity units.
func (p Product) SpaceFor(quantity int) decimal.Decimal {
	return p.Space.Mul(decimal.NewFromInt(int64(quantity)))
}

func (p Product) String() string {
	return fmt.Sprintf("%s (#%d)", p.Name, p.ID)
}

// IDSequence hands out sequential identities starting at 1. The zero value
// is ready to use. Each component that creates entities owns its own sequence.
type IDSequence struct {
	last int
}

// Next returns the next identity.
func (s *IDSequence) Next() int {
	s.last++
	return s.last
}

// Catalog is the ordered list of products offered by the shop.
type Catalog struct {
	ids      IDSequence
	products []Product
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add creates a product with the next catalog identity and appends it.
func (c *Catalog) Add(name string, purchasePrice, sellPrice, space decimal.Decimal) Product {
	product := Product{
		ID:            ProductID(c.ids.Next()),
		Name:          name,
		PurchasePrice: purchasePrice,
		SellPrice:     sellPrice,
		Space:         space,
	}
	c.products = append(c.products, product)
	return product
}

// Products returns the catalog entries in insertion order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
