package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Warehouse is the stock ledger of a shop. Capacity is checked by the supplier
// purchase path; AddStock itself records deliveries even past capacity unless
// the warehouse was built WithStrictCapacity.
type Warehouse struct {
	capacity decimal.Decimal
	strict   bool
	entries  []*StockEntry
	index    map[ProductID]int
}

// WarehouseOption customizes a Warehouse at construction.
type WarehouseOption func(*Warehouse)

// WithStrictCapacity makes AddStock reject additions that do not fit.
func WithStrictCapacity() WarehouseOption {
	return func(w *Warehouse) {
		w.strict = true
	}
}

// NewWarehouse builds an empty warehouse with the given capacity in space units.
func NewWarehouse(capacity decimal.Decimal, opts ...WarehouseOption) *Warehouse {
	w := &Warehouse{
		capacity: capacity,
		index:    make(map[ProductID]int),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Capacity returns the total space of the warehouse.
func (w *Warehouse) Capacity() decimal.Decimal {
	return w.capacity
}

// StrictCapacity reports whether AddStock enforces capacity.
func (w *Warehouse) StrictCapacity() bool {
	return w.strict
}

// Quantity returns the stocked quantity of product, 0 if never stocked.
func (w *Warehouse) Quantity(product Product) int {
	if entry := w.entry(product); entry != nil {
		return entry.Quantity
	}
	return 0
}

// AddStock increments the entry for product, creating it on first addition.
func (w *Warehouse) AddStock(product Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("add %d of %s: %w", quantity, product, ErrInvalidQuantity)
	}

	if w.strict && product.SpaceFor(quantity).GreaterThan(w.AvailableSpace()) {
		return fmt.Errorf("add %d of %s: %w", quantity, product, ErrOverCapacity)
	}

	if entry := w.entry(product); entry != nil {
		entry.Quantity += quantity
		return nil
	}

	w.index[product.ID] = len(w.entries)
	w.entries = append(w.entries, &StockEntry{Product: product, Quantity: quantity})
	return nil
}

// RemoveStock decrements the entry for product. Entries that reach zero stay.
func (w *Warehouse) RemoveStock(product Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("remove %d of %s: %w", quantity, product, ErrInvalidQuantity)
	}

	entry := w.entry(product)
	if entry == nil {
		return fmt.Errorf("remove %d of %s: %w", quantity, product, ErrProductNotFound)
	}

	if entry.Quantity < quantity {
		return fmt.Errorf("remove %d of %s, have %d: %w", quantity, product, entry.Quantity, ErrInsufficientStock)
	}

	entry.Quantity -= quantity
	return nil
}

// UsedSpace sums space × quantity over every entry.
func (w *Warehouse) UsedSpace() decimal.Decimal {
	used := decimal.Zero
	for _, entry := range w.entries {
		used = used.Add(entry.UsedSpace())
	}
	return used
}

// AvailableSpace is capacity minus used space. It goes negative when
// deliveries overfill a lenient warehouse.
func (w *Warehouse) AvailableSpace() decimal.Decimal {
	return w.capacity.Sub(w.UsedSpace())
}

// Entries returns a snapshot of the stock entries in first-stocked order.
func (w *Warehouse) Entries() []StockEntry {
	out := make([]StockEntry, 0, len(w.entries))
	for _, entry := range w.entries {
		out = append(out, *entry)
	}
	return out
}

func (w *Warehouse) entry(product Product) *StockEntry {
	i, ok := w.index[product.ID]
	if !ok {
		return nil
	}
	return w.entries[i]
}
