package models

import "errors"

// Failures surfaced by the day-cycle engine. All of them are recoverable: the
// operation that returned one did not mutate anything.
var (
	// ErrInvalidQuantity indicates a non-positive quantity on a stock, order or line operation.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidInput indicates an out-of-range structural parameter such as a day number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProductNotFound indicates a stock removal for a product the warehouse never stocked.
	ErrProductNotFound = errors.New("product not found in warehouse")

	// ErrInsufficientStock indicates a removal larger than the tracked quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrCannotFulfill indicates a customer order whose stock requirement is not met.
	ErrCannotFulfill = errors.New("order cannot be fulfilled")

	// ErrOverBudget indicates a purchase that would exceed the shop budget.
	ErrOverBudget = errors.New("not enough budget")

	// ErrOverCapacity indicates a purchase that would exceed the available warehouse space.
	ErrOverCapacity = errors.New("not enough warehouse space")

	// ErrEmptyDraft indicates a supplier draft confirmed without lines.
	ErrEmptyDraft = errors.New("supplier order draft is empty")

	// ErrInvalidState indicates a status transition the entity does not allow.
	ErrInvalidState = errors.New("invalid state transition")
)
