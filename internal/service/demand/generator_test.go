package demand

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/shopsim/internal/domain/models"
)

func defaultConfig() Config {
	return Config{
		MinOrdersPerDay:     3,
		MaxOrdersPerDay:     12,
		MinQuantityPerOrder: 1,
		MaxQuantityPerOrder: 6,
		Seed:                123,
	}
}

func testCatalog() []models.Product {
	catalog := models.NewCatalog()
	catalog.Add("Milk", decimal.NewFromInt(10), decimal.NewFromInt(15), decimal.RequireFromString("0.1"))
	catalog.Add("Bread", decimal.NewFromInt(11), decimal.NewFromInt(14), decimal.RequireFromString("0.2"))
	catalog.Add("Butter", decimal.NewFromInt(12), decimal.NewFromInt(13), decimal.RequireFromString("0.3"))
	return catalog.Products()
}

type orderTuple struct {
	product  models.ProductID
	quantity int
	status   models.CustomerOrderStatus
}

func tuples(orders []*models.CustomerOrder) []orderTuple {
	out := make([]orderTuple, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderTuple{product: o.Product.ID, quantity: o.Quantity, status: o.Status()})
	}
	return out
}

func TestNewGenerator_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero min orders", mutate: func(c *Config) { c.MinOrdersPerDay = 0 }},
		{name: "max orders equal to min", mutate: func(c *Config) { c.MaxOrdersPerDay = c.MinOrdersPerDay }},
		{name: "max orders below min", mutate: func(c *Config) { c.MaxOrdersPerDay = 1 }},
		{name: "zero min quantity", mutate: func(c *Config) { c.MinQuantityPerOrder = 0 }},
		{name: "max quantity below min", mutate: func(c *Config) { c.MaxQuantityPerOrder = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)

			_, err := NewGenerator(cfg)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestNewGenerator_EqualQuantityBoundsAllowed(t *testing.T) {
	cfg := defaultConfig()
	cfg.MinQuantityPerOrder = 4
	cfg.MaxQuantityPerOrder = 4

	gen, err := NewGenerator(cfg)
	require.NoError(t, err)

	orders, err := gen.GenerateOrders(testCatalog())
	require.NoError(t, err)
	for _, o := range orders {
		assert.Equal(t, 4, o.Quantity)
	}
}

func TestGenerateOrders_EmptyCatalog(t *testing.T) {
	gen, err := NewGenerator(defaultConfig())
	require.NoError(t, err)

	_, err = gen.GenerateOrders(nil)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestGenerateOrders_RespectsBounds(t *testing.T) {
	cfg := defaultConfig()
	gen, err := NewGenerator(cfg)
	require.NoError(t, err)
	catalog := testCatalog()

	for day := 0; day < 200; day++ {
		orders, err := gen.GenerateOrders(catalog)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(orders), cfg.MinOrdersPerDay)
		assert.LessOrEqual(t, len(orders), cfg.MaxOrdersPerDay)
		for _, o := range orders {
			assert.GreaterOrEqual(t, o.Quantity, cfg.MinQuantityPerOrder)
			assert.LessOrEqual(t, o.Quantity, cfg.MaxQuantityPerOrder)
			assert.Equal(t, models.CustomerOrderPending, o.Status())
			assert.Contains(t, catalog, o.Product)
		}
	}
}

func TestGenerateOrders_DeterministicForSeed(t *testing.T) {
	catalog := testCatalog()
	first, err := NewGenerator(defaultConfig())
	require.NoError(t, err)
	second, err := NewGenerator(defaultConfig())
	require.NoError(t, err)

	for day := 0; day < 5; day++ {
		a, err := first.GenerateOrders(catalog)
		require.NoError(t, err)
		b, err := second.GenerateOrders(catalog)
		require.NoError(t, err)

		assert.Equal(t, tuples(a), tuples(b), "day %d", day)
	}
}

func TestGenerateOrders_DifferentSeedsDiverge(t *testing.T) {
	catalog := testCatalog()
	cfg := defaultConfig()
	a, _ := NewGenerator(cfg)
	cfg.Seed = 456
	b, _ := NewGenerator(cfg)

	var left, right []orderTuple
	for day := 0; day < 5; day++ {
		ordersA, _ := a.GenerateOrders(catalog)
		ordersB, _ := b.GenerateOrders(catalog)
		left = append(left, tuples(ordersA)...)
		right = append(right, tuples(ordersB)...)
	}

	assert.NotEqual(t, left, right)
}

func TestGenerateOrders_UniqueSequentialIdentities(t *testing.T) {
	gen, err := NewGenerator(defaultConfig())
	require.NoError(t, err)

	seen := make(map[int]bool)
	next := 1
	for day := 0; day < 3; day++ {
		orders, err := gen.GenerateOrders(testCatalog())
		require.NoError(t, err)
		for _, o := range orders {
			assert.False(t, seen[o.ID])
			assert.Equal(t, next, o.ID)
			seen[o.ID] = true
			next++
		}
	}
}

func TestGenerateOrders_SamplesEveryProduct(t *testing.T) {
	gen, err := NewGenerator(defaultConfig())
	require.NoError(t, err)
	catalog := testCatalog()

	picked := make(map[models.ProductID]bool)
	for day := 0; day < 50; day++ {
		orders, err := gen.GenerateOrders(catalog)
		require.NoError(t, err)
		for _, o := range orders {
			picked[o.Product.ID] = true
		}
	}

	assert.Len(t, picked, len(catalog))
}
