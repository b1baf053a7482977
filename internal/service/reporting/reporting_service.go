package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/shopsim/internal/domain/models"
	"github.com/mamadbah2/shopsim/internal/service/simulation"
)

// Sink stores published day reports.
type Sink interface {
	SaveDailyReport(ctx context.Context, report models.DailyReport) error
}

// Service publishes the outcome of every simulated day to the configured sinks.
type Service struct {
	runID  string
	sinks  []Sink
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a reporting service for one simulation run.
func NewService(logger *zap.Logger, sinks ...Sink) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		runID:  uuid.NewString(),
		sinks:  sinks,
		logger: logger,
		now:    time.Now,
	}
}

// RunID identifies the run every published report belongs to.
func (s *Service) RunID() string {
	return s.runID
}

// BuildReport converts a day outcome into its published form.
func (s *Service) BuildReport(outcome simulation.DayOutcome) models.DailyReport {
	result := outcome.Result

	stock := make([]models.StockReport, 0, len(outcome.Stock))
	for _, entry := range outcome.Stock {
		stock = append(stock, models.StockReport{Product: entry.Product.Name, Quantity: entry.Quantity})
	}

	return models.DailyReport{
		RunID:           s.runID,
		Day:             result.DayNumber,
		Orders:          result.TotalOrders(),
		Fulfilled:       result.FulfilledCount,
		Rejected:        result.RejectedCount,
		Revenue:         result.DayRevenue.StringFixed(2),
		StartingBudget:  result.StartingBudget.StringFixed(2),
		EndingBudget:    result.EndingBudget.StringFixed(2),
		DeliveredOrders: len(outcome.Delivered),
		Stock:           stock,
		CreatedAt:       s.now().UTC(),
	}
}

// Publish sends the day report to every sink. All sinks are attempted; the
// first failure is returned.
func (s *Service) Publish(ctx context.Context, outcome simulation.DayOutcome) error {
	if len(s.sinks) == 0 {
		return nil
	}

	report := s.BuildReport(outcome)

	var firstErr error
	for _, sink := range s.sinks {
		if err := sink.SaveDailyReport(ctx, report); err != nil {
			s.logger.Error("failed to publish day report", zap.Error(err), zap.Int("day", report.Day))
			if firstErr == nil {
				firstErr = fmt.Errorf("publish day %d: %w", report.Day, err)
			}
		}
	}

	if firstErr == nil {
		s.logger.Debug("day report published", zap.Int("day", report.Day), zap.Int("sinks", len(s.sinks)))
	}
	return firstErr
}

// FormatDeliveries renders the supplier deliveries received at opening.
func FormatDeliveries(delivered []*models.SupplierOrder) string {
	if len(delivered) == 0 {
		return "No supplier deliveries today."
	}

	var b strings.Builder
	b.WriteString("Supplier deliveries:")
	for _, order := range delivered {
		fmt.Fprintf(&b, "\n- order due day %d delivered: %d units, cost %s", order.DeliveryDay(), order.TotalQuantity(), order.TotalCost().StringFixed(2))
	}
	return b.String()
}

// FormatDay renders the customer summary of a finished day.
func FormatDay(result models.DayResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Day %d summary (customers)\n", result.DayNumber)
	fmt.Fprintf(&b, "Customer orders: %d\n", result.TotalOrders())
	fmt.Fprintf(&b, "Fulfilled:       %d\n", result.FulfilledCount)
	fmt.Fprintf(&b, "Rejected:        %d\n", result.RejectedCount)
	fmt.Fprintf(&b, "Day revenue:     %s\n", result.DayRevenue.StringFixed(2))
	fmt.Fprintf(&b, "Budget: %s -> %s", result.StartingBudget.StringFixed(2), result.EndingBudget.StringFixed(2))
	return b.String()
}

// FormatStock renders stock quantities, one product per line.
func FormatStock(stock []models.StockEntry) string {
	lines := make([]string, 0, len(stock))
	for _, entry := range stock {
		lines = append(lines, fmt.Sprintf("%s: %d", entry.Product.Name, entry.Quantity))
	}
	return strings.Join(lines, "\n")
}

// FormatFinal renders the closing summary of a run.
func FormatFinal(snap simulation.Snapshot, gameOver bool) string {
	var b strings.Builder
	if gameOver {
		b.WriteString("The shop went bankrupt: no stock left and no product it can afford or store.\n")
	} else {
		b.WriteString("Simulation finished: day limit reached.\n")
	}
	fmt.Fprintf(&b, "Final budget:  %s\n", snap.Budget.StringFixed(2))
	fmt.Fprintf(&b, "Total revenue: %s\n", snap.TotalRevenue.StringFixed(2))
	b.WriteString("Final stock:\n")
	b.WriteString(FormatStock(snap.Stock))
	return b.String()
}
