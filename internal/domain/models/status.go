package models

import "fmt"

// CustomerOrderStatus enumerates the lifecycle of a customer order.
type CustomerOrderStatus string

const (
	CustomerOrderPending   CustomerOrderStatus = "pending"
	CustomerOrderFulfilled CustomerOrderStatus = "fulfilled"
	CustomerOrderRejected  CustomerOrderStatus = "rejected"
)

// SupplierOrderStatus enumerates the lifecycle of a supplier order.
type SupplierOrderStatus string

const (
	SupplierOrderOrdered   SupplierOrderStatus = "ordered"
	SupplierOrderDelivered SupplierOrderStatus = "delivered"
)

var customerOrderTransitions = map[CustomerOrderStatus][]CustomerOrderStatus{
	CustomerOrderPending: {CustomerOrderFulfilled, CustomerOrderRejected},
}

var supplierOrderTransitions = map[SupplierOrderStatus][]SupplierOrderStatus{
	SupplierOrderOrdered: {SupplierOrderDelivered},
}

// CanTransition reports whether an order in status s may move to next.
func (s CustomerOrderStatus) CanTransition(next CustomerOrderStatus) bool {
	return allowed(customerOrderTransitions[s], next)
}

// IsTerminal reports whether no transition leaves s.
func (s CustomerOrderStatus) IsTerminal() bool {
	return len(customerOrderTransitions[s]) == 0
}

// CanTransition reports whether an order in status s may move to next.
func (s SupplierOrderStatus) CanTransition(next SupplierOrderStatus) bool {
	return allowed(supplierOrderTransitions[s], next)
}

func transitionCustomerOrder(from, to CustomerOrderStatus) (CustomerOrderStatus, error) {
	if !from.CanTransition(to) {
		return from, fmt.Errorf("customer order %s -> %s: %w", from, to, ErrInvalidState)
	}
	return to, nil
}

func transitionSupplierOrder(from, to SupplierOrderStatus) (SupplierOrderStatus, error) {
	if !from.CanTransition(to) {
		return from, fmt.Errorf("supplier order %s -> %s: %w", from, to, ErrInvalidState)
	}
	return to, nil
}

func allowed[S comparable](targets []S, next S) bool {
	for _, target := range targets {
		if target == next {
			return true
		}
	}
	return false
}
