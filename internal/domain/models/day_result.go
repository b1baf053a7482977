package models

import "github.com/shopspring/decimal"

// DayResult is the snapshot of one finished customer day.
type DayResult struct {
	DayNumber      int
	Orders         []*CustomerOrder
	FulfilledCount int
	RejectedCount  int
	DayRevenue     decimal.Decimal
	StartingBudget decimal.Decimal
	EndingBudget   decimal.Decimal
}

// TotalOrders returns the number of customer orders processed that day.
func (r DayResult) TotalOrders() int {
	return len(r.Orders)
}
