package models

import "time"

// DailyReport is the published record of one simulated day.
type DailyReport struct {
	RunID           string        `bson:"run_id" json:"run_id"`
	Day             int           `bson:"day" json:"day"`
	Orders          int           `bson:"orders" json:"orders"`
	Fulfilled       int           `bson:"fulfilled" json:"fulfilled"`
	Rejected        int           `bson:"rejected" json:"rejected"`
	Revenue         string        `bson:"revenue" json:"revenue"`
	StartingBudget  string        `bson:"starting_budget" json:"starting_budget"`
	EndingBudget    string        `bson:"ending_budget" json:"ending_budget"`
	DeliveredOrders int           `bson:"delivered_orders" json:"delivered_orders"`
	Stock           []StockReport `bson:"stock" json:"stock"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
}

// StockReport is the end-of-day quantity of one product.
type StockReport struct {
	Product  string `bson:"product" json:"product"`
	Quantity int    `bson:"quantity" json:"quantity"`
}
