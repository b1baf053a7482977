package models

import "github.com/shopspring/decimal"

// DefaultBudget is the starting budget of a shop when none is given.
var DefaultBudget = decimal.NewFromInt(10000)

// Shop is the budget and revenue ledger wrapped around a warehouse.
type Shop struct {
	warehouse      *Warehouse
	budget         decimal.Decimal
	dayNumber      int
	todayRevenue   decimal.Decimal
	revenueHistory []decimal.Decimal
}

// NewShop opens a shop on day 1 with the given warehouse and budget.
func NewShop(warehouse *Warehouse, budget decimal.Decimal) *Shop {
	return &Shop{
		warehouse:    warehouse,
		budget:       budget,
		dayNumber:    1,
		todayRevenue: decimal.Zero,
	}
}

// Warehouse returns the warehouse owned by the shop.
func (s *Shop) Warehouse() *Warehouse {
	return s.warehouse
}

// Budget returns the current budget. A negative budget means bankrupt.
func (s *Shop) Budget() decimal.Decimal {
	return s.budget
}

// DayNumber returns the current simulated day, starting at 1.
func (s *Shop) DayNumber() int {
	return s.dayNumber
}

// TodayRevenue returns the revenue accumulated since the last day change.
func (s *Shop) TodayRevenue() decimal.Decimal {
	return s.todayRevenue
}

// RevenueHistory returns the revenue of every finished day, oldest first.
func (s *Shop) RevenueHistory() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.revenueHistory))
	copy(out, s.revenueHistory)
	return out
}

// RegisterSale books amount as revenue and adds it to the budget.
func (s *Shop) RegisterSale(amount decimal.Decimal) {
	s.todayRevenue = s.todayRevenue.Add(amount)
	s.budget = s.budget.Add(amount)
}

// Pay deducts amount from the budget. It does not count against revenue.
func (s *Shop) Pay(amount decimal.Decimal) {
	s.budget = s.budget.Sub(amount)
}

// StartNewDay flushes today's revenue into the history and moves to the next
// day. Call it once per simulated day, after all of that day's activity.
func (s *Shop) StartNewDay() {
	s.revenueHistory = append(s.revenueHistory, s.todayRevenue)
	s.dayNumber++
	s.todayRevenue = decimal.Zero
}

// IsBankrupt reports whether the budget is below zero.
func (s *Shop) IsBankrupt() bool {
	return s.budget.IsNegative()
}

// TotalRevenue sums the history. The current day is not included.
func (s *Shop) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, revenue := range s.revenueHistory {
		total = total.Add(revenue)
	}
	return total
}
