package supplier

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/shopsim/internal/domain/models"
)

// Runner tracks confirmed supplier orders and delivers the ones that fall due.
type Runner struct {
	orders []*models.SupplierOrder
	logger *zap.Logger
}

// NewRunner tracks the given orders in the given sequence.
func NewRunner(logger *zap.Logger, orders ...*models.SupplierOrder) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{orders: append([]*models.SupplierOrder(nil), orders...), logger: logger}
}

// Track appends an order to the end of the delivery sequence.
func (r *Runner) Track(order *models.SupplierOrder) {
	r.orders = append(r.orders, order)
}

// Orders returns every tracked order, delivered or not.
func (r *Runner) Orders() []*models.SupplierOrder {
	return append([]*models.SupplierOrder(nil), r.orders...)
}

// Pending returns the orders that have not been delivered yet.
func (r *Runner) Pending() []*models.SupplierOrder {
	var pending []*models.SupplierOrder
	for _, order := range r.orders {
		if order.Status() == models.SupplierOrderOrdered {
			pending = append(pending, order)
		}
	}
	return pending
}

// RunForDay delivers every Ordered order due on currentDay, in tracking
// order, and returns them. A delivery failure stops the run and leaves the
// remaining orders untouched.
func (r *Runner) RunForDay(shop *models.Shop, currentDay int) ([]*models.SupplierOrder, error) {
	if currentDay < 0 {
		return nil, fmt.Errorf("current day %d must be non-negative: %w", currentDay, models.ErrInvalidInput)
	}

	var delivered []*models.SupplierOrder
	for _, order := range r.orders {
		if order.Status() != models.SupplierOrderOrdered || order.DeliveryDay() != currentDay {
			continue
		}

		if err := order.Deliver(shop); err != nil {
			return delivered, fmt.Errorf("run deliveries for day %d: %w", currentDay, err)
		}

		r.logger.Debug("supplier order delivered",
			zap.Int("day", currentDay),
			zap.Int("lines", len(order.Lines())),
			zap.Int("units", order.TotalQuantity()))
		delivered = append(delivered, order)
	}

	return delivered, nil
}
