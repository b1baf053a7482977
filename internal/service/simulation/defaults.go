package simulation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/shopsim/internal/domain/models"
)

// DefaultCatalog returns the three staple products the shop starts with.
func DefaultCatalog() *models.Catalog {
	catalog := models.NewCatalog()
	catalog.Add("Milk", decimal.NewFromInt(10), decimal.NewFromInt(15), decimal.RequireFromString("0.1"))
	catalog.Add("Bread", decimal.NewFromInt(11), decimal.NewFromInt(14), decimal.RequireFromString("0.2"))
	catalog.Add("Butter", decimal.NewFromInt(12), decimal.NewFromInt(13), decimal.RequireFromString("0.3"))
	return catalog
}

// ShopSetup describes the opening state of a shop.
type ShopSetup struct {
	Capacity       decimal.Decimal
	Budget         decimal.Decimal
	InitialStock   int
	StrictCapacity bool
}

// NewStockedShop opens a shop and stocks InitialStock units of every product.
func NewStockedShop(setup ShopSetup, products []models.Product) (*models.Shop, error) {
	var opts []models.WarehouseOption
	if setup.StrictCapacity {
		opts = append(opts, models.WithStrictCapacity())
	}

	warehouse := models.NewWarehouse(setup.Capacity, opts...)
	if setup.InitialStock > 0 {
		for _, p := range products {
			if err := warehouse.AddStock(p, setup.InitialStock); err != nil {
				return nil, fmt.Errorf("initial stock: %w", err)
			}
		}
	}

	return models.NewShop(warehouse, setup.Budget), nil
}
