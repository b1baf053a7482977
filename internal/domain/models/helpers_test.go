package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "expected %s, got %s %v", expected, actual, msgAndArgs)
}

func newMilk() Product {
	return Product{ID: 1, Name: "Milk", PurchasePrice: dec("10"), SellPrice: dec("15"), Space: dec("0.1")}
}

func newBread() Product {
	return Product{ID: 2, Name: "Bread", PurchasePrice: dec("11"), SellPrice: dec("14"), Space: dec("0.2")}
}
