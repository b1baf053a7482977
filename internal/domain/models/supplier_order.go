package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SupplierOrderLine is one product on a supplier purchase. UnitPrice is the
// product's purchase price at the moment the line was created.
type SupplierOrderLine struct {
	Product   Product
	Quantity  int
	UnitPrice decimal.Decimal
}

// NewSupplierOrderLine snapshots the current purchase price of product.
func NewSupplierOrderLine(product Product, quantity int) (SupplierOrderLine, error) {
	if quantity <= 0 {
		return SupplierOrderLine{}, fmt.Errorf("supplier line for %s: quantity %d: %w", product, quantity, ErrInvalidQuantity)
	}
	return SupplierOrderLine{
		Product:   product,
		Quantity:  quantity,
		UnitPrice: product.PurchasePrice,
	}, nil
}

// LineCost is unit price × quantity.
func (l SupplierOrderLine) LineCost() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineSpace is the warehouse space the line occupies once delivered.
func (l SupplierOrderLine) LineSpace() decimal.Decimal {
	return l.Product.SpaceFor(l.Quantity)
}

func (l SupplierOrderLine) validate() error {
	if l.Product.ID <= 0 {
		return fmt.Errorf("supplier line without product identity: %w", ErrInvalidInput)
	}
	if l.Quantity <= 0 {
		return fmt.Errorf("supplier line for %s: quantity %d: %w", l.Product, l.Quantity, ErrInvalidInput)
	}
	return nil
}

// SupplierOrder is a confirmed purchase awaiting or past delivery.
type SupplierOrder struct {
	lines       []SupplierOrderLine
	status      SupplierOrderStatus
	deliveryDay int
}

// NewSupplierOrder builds an Ordered supplier order due on deliveryDay.
func NewSupplierOrder(lines []SupplierOrderLine, deliveryDay int) (*SupplierOrder, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("supplier order must have at least one line: %w", ErrInvalidInput)
	}

	for i, line := range lines {
		if err := line.validate(); err != nil {
			return nil, fmt.Errorf("supplier order line %d: %w", i, err)
		}
	}

	if deliveryDay < 0 {
		return nil, fmt.Errorf("supplier order delivery day %d must be non-negative: %w", deliveryDay, ErrInvalidInput)
	}

	return &SupplierOrder{
		lines:       lines,
		status:      SupplierOrderOrdered,
		deliveryDay: deliveryDay,
	}, nil
}

// Lines returns a copy of the order lines.
func (o *SupplierOrder) Lines() []SupplierOrderLine {
	out := make([]SupplierOrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// Status returns the lifecycle status.
func (o *SupplierOrder) Status() SupplierOrderStatus {
	return o.status
}

// DeliveryDay returns the day on which the order becomes due.
func (o *SupplierOrder) DeliveryDay() int {
	return o.deliveryDay
}

// TotalCost sums the line costs.
func (o *SupplierOrder) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.LineCost())
	}
	return total
}

// TotalQuantity sums the line quantities.
func (o *SupplierOrder) TotalQuantity() int {
	total := 0
	for _, line := range o.lines {
		total += line.Quantity
	}
	return total
}

// TotalSpace sums the space the lines occupy once delivered.
func (o *SupplierOrder) TotalSpace() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.LineSpace())
	}
	return total
}

// Deliver puts every line into the shop's warehouse. A second call fails.
// A strict warehouse that cannot take the whole order receives none of it.
func (o *SupplierOrder) Deliver(shop *Shop) error {
	next, err := transitionSupplierOrder(o.status, SupplierOrderDelivered)
	if err != nil {
		return fmt.Errorf("deliver supplier order due day %d: %w", o.deliveryDay, err)
	}

	warehouse := shop.Warehouse()
	if needed := o.TotalSpace(); warehouse.StrictCapacity() && needed.GreaterThan(warehouse.AvailableSpace()) {
		return fmt.Errorf("deliver supplier order due day %d: needs %s space, %s available: %w",
			o.deliveryDay, needed, warehouse.AvailableSpace(), ErrOverCapacity)
	}

	for _, line := range o.lines {
		if err := warehouse.AddStock(line.Product, line.Quantity); err != nil {
			return fmt.Errorf("deliver supplier order due day %d: %w", o.deliveryDay, err)
		}
	}

	o.status = next
	return nil
}
