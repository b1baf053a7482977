package models

import "github.com/shopspring/decimal"

// StockEntry tracks the quantity of one product held in a warehouse.
type StockEntry struct {
	Product  Product
	Quantity int
}

// TotalSellValue is the revenue the entry would produce if sold out.
func (e StockEntry) TotalSellValue() decimal.Decimal {
	return e.Product.SellValueFor(e.Quantity)
}

// TotalPurchaseCost is what the entry cost to buy at current purchase prices.
func (e StockEntry) TotalPurchaseCost() decimal.Decimal {
	return e.Product.PurchaseCostFor(e.Quantity)
}

// UsedSpace is the warehouse space occupied by the entry.
func (e StockEntry) UsedSpace() decimal.Decimal {
	return e.Product.SpaceFor(e.Quantity)
}
