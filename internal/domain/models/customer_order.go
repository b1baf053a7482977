package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CustomerOrder is one customer's demand for a quantity of a single product.
type CustomerOrder struct {
	ID       int
	Product  Product
	Quantity int
	status   CustomerOrderStatus
}

// NewCustomerOrder builds a pending order.
func NewCustomerOrder(id int, product Product, quantity int) (*CustomerOrder, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("customer order for %s: quantity %d: %w", product, quantity, ErrInvalidQuantity)
	}
	return &CustomerOrder{
		ID:       id,
		Product:  product,
		Quantity: quantity,
		status:   CustomerOrderPending,
	}, nil
}

// Status returns the current lifecycle status.
func (o *CustomerOrder) Status() CustomerOrderStatus {
	return o.status
}

// TotalOrderValue is sell price × quantity.
func (o *CustomerOrder) TotalOrderValue() decimal.Decimal {
	return o.Product.SellValueFor(o.Quantity)
}

// CanBeFulfilled reports whether the warehouse holds enough of the product.
func (o *CustomerOrder) CanBeFulfilled(warehouse *Warehouse) bool {
	return warehouse.Quantity(o.Product) >= o.Quantity
}

// Fulfill takes the stock out of the warehouse and returns the order value.
// On failure neither the order nor the warehouse changes.
func (o *CustomerOrder) Fulfill(warehouse *Warehouse) (decimal.Decimal, error) {
	next, err := transitionCustomerOrder(o.status, CustomerOrderFulfilled)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fulfill order %d: %w", o.ID, err)
	}

	if !o.CanBeFulfilled(warehouse) {
		return decimal.Zero, fmt.Errorf("fulfill order %d: need %d of %s, have %d: %w",
			o.ID, o.Quantity, o.Product, warehouse.Quantity(o.Product), ErrCannotFulfill)
	}

	if err := warehouse.RemoveStock(o.Product, o.Quantity); err != nil {
		return decimal.Zero, fmt.Errorf("fulfill order %d: %w", o.ID, err)
	}

	o.status = next
	return o.TotalOrderValue(), nil
}

// Reject closes the order without touching stock or budget. Choosing between
// Fulfill and Reject is up to the caller.
func (o *CustomerOrder) Reject() error {
	next, err := transitionCustomerOrder(o.status, CustomerOrderRejected)
	if err != nil {
		return fmt.Errorf("reject order %d: %w", o.ID, err)
	}
	o.status = next
	return nil
}
