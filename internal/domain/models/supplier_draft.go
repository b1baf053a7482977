package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SupplierOrderDraft collects purchase lines before they are committed.
// Lines are validated against the shop as it is when they are added; nothing
// is reserved, so only one draft per shop should be open at a time.
type SupplierOrderDraft struct {
	lines     []SupplierOrderLine
	confirmed bool
}

// NewSupplierOrderDraft returns an empty draft.
func NewSupplierOrderDraft() *SupplierOrderDraft {
	return &SupplierOrderDraft{}
}

// Lines returns a copy of the drafted lines.
func (d *SupplierOrderDraft) Lines() []SupplierOrderLine {
	out := make([]SupplierOrderLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// Len returns the number of drafted lines.
func (d *SupplierOrderDraft) Len() int {
	return len(d.lines)
}

// Confirmed reports whether the draft was turned into an order.
func (d *SupplierOrderDraft) Confirmed() bool {
	return d.confirmed
}

// AddLine appends a line for product if the draft, including the new line,
// still fits in the warehouse's available space and the shop's budget.
func (d *SupplierOrderDraft) AddLine(shop *Shop, product Product, quantity int) (SupplierOrderLine, error) {
	if d.confirmed {
		return SupplierOrderLine{}, fmt.Errorf("add line to confirmed draft: %w", ErrInvalidState)
	}

	line, err := NewSupplierOrderLine(product, quantity)
	if err != nil {
		return SupplierOrderLine{}, err
	}

	prospectiveSpace := d.TotalSpace().Add(line.LineSpace())
	if available := shop.Warehouse().AvailableSpace(); prospectiveSpace.GreaterThan(available) {
		return SupplierOrderLine{}, fmt.Errorf("add %d of %s: needs %s space, %s available: %w",
			quantity, product, prospectiveSpace, available, ErrOverCapacity)
	}

	prospectiveCost := d.TotalCost().Add(line.LineCost())
	if budget := shop.Budget(); prospectiveCost.GreaterThan(budget) {
		return SupplierOrderLine{}, fmt.Errorf("add %d of %s: costs %s, budget %s: %w",
			quantity, product, prospectiveCost, budget, ErrOverBudget)
	}

	d.lines = append(d.lines, line)
	return line, nil
}

// TotalCost sums the line costs.
func (d *SupplierOrderDraft) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.lines {
		total = total.Add(line.LineCost())
	}
	return total
}

// TotalSpace sums the space the lines occupy once delivered.
func (d *SupplierOrderDraft) TotalSpace() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.lines {
		total = total.Add(line.LineSpace())
	}
	return total
}

// Confirm re-validates the draft against the shop, turns it into an Ordered
// supplier order due on deliveryDay and pays for it. On any failure the
// budget is left untouched.
func (d *SupplierOrderDraft) Confirm(shop *Shop, deliveryDay int) (*SupplierOrder, error) {
	if d.confirmed {
		return nil, fmt.Errorf("confirm draft twice: %w", ErrInvalidState)
	}

	if len(d.lines) == 0 {
		return nil, ErrEmptyDraft
	}

	totalCost := d.TotalCost()
	if budget := shop.Budget(); totalCost.GreaterThan(budget) {
		return nil, fmt.Errorf("confirm draft costing %s, budget %s: %w", totalCost, budget, ErrOverBudget)
	}

	totalSpace := d.TotalSpace()
	if available := shop.Warehouse().AvailableSpace(); totalSpace.GreaterThan(available) {
		return nil, fmt.Errorf("confirm draft needing %s space, %s available: %w", totalSpace, available, ErrOverCapacity)
	}

	order, err := NewSupplierOrder(d.lines, deliveryDay)
	if err != nil {
		return nil, fmt.Errorf("confirm draft: %w", err)
	}

	shop.Pay(totalCost)
	d.confirmed = true
	return order, nil
}
