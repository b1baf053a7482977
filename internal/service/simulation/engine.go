package simulation

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/shopsim/internal/domain/models"
	"github.com/mamadbah2/shopsim/internal/service/supplier"
	"github.com/mamadbah2/shopsim/pkg/logger"
)

// DayOutcome is everything that happened during one full day: the supplier
// deliveries made at opening and the customer day that followed.
type DayOutcome struct {
	Delivered []*models.SupplierOrder
	Result    models.DayResult
	Stock     []models.StockEntry
}

// Engine owns one shop and advances it through full days. Its methods may be
// called from the autoplay scheduler and the caller alike; each day runs
// under a single lock so no one observes it half-processed.
type Engine struct {
	mu       sync.Mutex
	shop     *models.Shop
	products []models.Product
	runner   *supplier.Runner
	days     *DaySimulation
	logger   *zap.Logger

	// receivedDay is the day deliveries last ran for; delivered collects
	// what they brought until the day is closed.
	receivedDay int
	delivered   []*models.SupplierOrder
}

// NewEngine wires an engine around an already stocked shop.
func NewEngine(shop *models.Shop, products []models.Product, generator OrderGenerator, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		shop:     shop,
		products: append([]models.Product(nil), products...),
		runner:   supplier.NewRunner(logger.Named(log, "supplier")),
		days:     NewDaySimulation(generator, logger.Named(log, "day")),
		logger:   log,
	}
}

// Products returns the catalog the engine sells from.
func (e *Engine) Products() []models.Product {
	return append([]models.Product(nil), e.products...)
}

// Snapshot is a consistent read of the shop ledger between days.
type Snapshot struct {
	Day            int
	Budget         decimal.Decimal
	AvailableSpace decimal.Decimal
	TotalRevenue   decimal.Decimal
	Stock          []models.StockEntry
	PendingOrders  int
}

// Snapshot reads the shop state under the engine lock.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Day:            e.shop.DayNumber(),
		Budget:         e.shop.Budget(),
		AvailableSpace: e.shop.Warehouse().AvailableSpace(),
		TotalRevenue:   e.shop.TotalRevenue(),
		Stock:          e.stock(),
		PendingOrders:  len(e.runner.Pending()),
	}
}

// PlaceSupplierOrder confirms draft for delivery on the next day and tracks
// the resulting order.
func (e *Engine) PlaceSupplierOrder(draft *models.SupplierOrderDraft) (*models.SupplierOrder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	deliveryDay := e.shop.DayNumber() + 1
	order, err := draft.Confirm(e.shop, deliveryDay)
	if err != nil {
		return nil, fmt.Errorf("place supplier order: %w", err)
	}

	e.runner.Track(order)
	e.logger.Info("supplier order placed",
		zap.Int("delivery_day", deliveryDay),
		zap.String("cost", order.TotalCost().StringFixed(2)),
		zap.String("budget", e.shop.Budget().StringFixed(2)))
	return order, nil
}

// AddDraftLine adds a line to draft against the engine's shop.
func (e *Engine) AddDraftLine(draft *models.SupplierOrderDraft, product models.Product, quantity int) (models.SupplierOrderLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return draft.AddLine(e.shop, product, quantity)
}

// ReceiveDeliveries delivers the supplier orders due on the current day.
// Calling it again on the same day delivers nothing new. Purchases should be
// drafted after this so they are checked against the space the deliveries
// took.
func (e *Engine) ReceiveDeliveries() ([]*models.SupplierOrder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.receiveDeliveries()
}

// ServeCustomers runs the customer half of the current day and closes it.
// Deliveries not yet received today are received first.
func (e *Engine) ServeCustomers() (DayOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.serveCustomers()
}

// RunDay delivers the supplier orders due on the current day, then serves the
// day's customers and closes the day.
func (e *Engine) RunDay() (DayOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.receiveDeliveries(); err != nil {
		return DayOutcome{Delivered: e.takeDelivered()}, err
	}
	return e.serveCustomers()
}

func (e *Engine) receiveDeliveries() ([]*models.SupplierOrder, error) {
	day := e.shop.DayNumber()
	if e.receivedDay != day {
		e.receivedDay = day
		e.delivered = nil
	}

	delivered, err := e.runner.RunForDay(e.shop, day)
	e.delivered = append(e.delivered, delivered...)
	if err != nil {
		return delivered, err
	}
	if len(delivered) > 0 {
		e.logger.Info("supplier deliveries received", zap.Int("day", day), zap.Int("orders", len(delivered)))
	}
	return delivered, nil
}

func (e *Engine) serveCustomers() (DayOutcome, error) {
	if e.receivedDay != e.shop.DayNumber() {
		if _, err := e.receiveDeliveries(); err != nil {
			return DayOutcome{Delivered: e.takeDelivered()}, err
		}
	}

	result, err := e.days.RunDay(e.shop, e.products)
	if err != nil {
		return DayOutcome{Delivered: e.takeDelivered()}, err
	}

	e.logger.Info("day completed",
		zap.Int("day", result.DayNumber),
		zap.Int("orders", result.TotalOrders()),
		zap.Int("fulfilled", result.FulfilledCount),
		zap.Int("rejected", result.RejectedCount),
		zap.String("revenue", result.DayRevenue.StringFixed(2)),
		zap.String("ending_budget", result.EndingBudget.StringFixed(2)))

	return DayOutcome{Delivered: e.takeDelivered(), Result: result, Stock: e.stock()}, nil
}

// takeDelivered hands over the orders received today and clears the list.
func (e *Engine) takeDelivered() []*models.SupplierOrder {
	delivered := e.delivered
	e.delivered = nil
	return delivered
}

// GameOver reports whether the shop can no longer trade: nothing of the
// catalog is in stock and no single unit of any product is both affordable
// and fits in the warehouse.
func (e *Engine) GameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	warehouse := e.shop.Warehouse()
	for _, p := range e.products {
		if warehouse.Quantity(p) > 0 {
			return false
		}
	}

	available := warehouse.AvailableSpace()
	if !available.IsPositive() {
		return true
	}

	budget := e.shop.Budget()
	for _, p := range e.products {
		if budget.GreaterThanOrEqual(p.PurchasePrice) && available.GreaterThanOrEqual(p.Space) {
			return false
		}
	}
	return true
}

// stock lists catalog quantities in catalog order, including products never stocked.
func (e *Engine) stock() []models.StockEntry {
	out := make([]models.StockEntry, 0, len(e.products))
	for _, p := range e.products {
		out = append(out, models.StockEntry{Product: p, Quantity: e.shop.Warehouse().Quantity(p)})
	}
	return out
}
