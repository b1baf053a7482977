package simulation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/shopsim/internal/domain/models"
)

// OrderGenerator produces the customer orders of one day.
type OrderGenerator interface {
	GenerateOrders(products []models.Product) ([]*models.CustomerOrder, error)
}

// DaySimulation runs the customer half of a simulated day.
type DaySimulation struct {
	generator OrderGenerator
	logger    *zap.Logger
}

// NewDaySimulation wires a day simulation around an order generator.
func NewDaySimulation(generator OrderGenerator, logger *zap.Logger) *DaySimulation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DaySimulation{generator: generator, logger: logger}
}

// RunDay generates the day's orders, serves them one at a time in generation
// order so earlier orders consume stock before later ones are checked, then
// closes the day on the shop ledger. An error leaves the day half-applied.
func (d *DaySimulation) RunDay(shop *models.Shop, products []models.Product) (models.DayResult, error) {
	day := shop.DayNumber()
	startingBudget := shop.Budget()

	orders, err := d.generator.GenerateOrders(products)
	if err != nil {
		return models.DayResult{}, fmt.Errorf("day %d: %w", day, err)
	}

	var fulfilled, rejected int
	for _, order := range orders {
		if order.CanBeFulfilled(shop.Warehouse()) {
			value, err := order.Fulfill(shop.Warehouse())
			if err != nil {
				return models.DayResult{}, fmt.Errorf("day %d: %w", day, err)
			}
			shop.RegisterSale(value)
			fulfilled++
		} else {
			if err := order.Reject(); err != nil {
				return models.DayResult{}, fmt.Errorf("day %d: %w", day, err)
			}
			rejected++
		}

		d.logger.Debug("customer order processed",
			zap.Int("day", day),
			zap.Int("order_id", order.ID),
			zap.String("product", order.Product.Name),
			zap.Int("quantity", order.Quantity),
			zap.String("status", string(order.Status())))
	}

	dayRevenue := shop.TodayRevenue()
	shop.StartNewDay()

	return models.DayResult{
		DayNumber:      day,
		Orders:         orders,
		FulfilledCount: fulfilled,
		RejectedCount:  rejected,
		DayRevenue:     dayRevenue,
		StartingBudget: startingBudget,
		EndingBudget:   shop.Budget(),
	}, nil
}
