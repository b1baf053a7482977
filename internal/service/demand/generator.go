package demand

import (
	"fmt"
	"math/rand/v2"

	"github.com/mamadbah2/shopsim/internal/domain/models"
)

// Config bounds the uniform sampling of daily customer demand.
type Config struct {
	MinOrdersPerDay     int
	MaxOrdersPerDay     int
	MinQuantityPerOrder int
	MaxQuantityPerOrder int
	Seed                uint64
}

// Validate ensures the bounds describe a non-empty sampling range.
func (c Config) Validate() error {
	switch {
	case c.MinOrdersPerDay <= 0:
		return fmt.Errorf("minimum orders per day must be > 0, got %d: %w", c.MinOrdersPerDay, models.ErrInvalidInput)
	case c.MaxOrdersPerDay <= c.MinOrdersPerDay:
		return fmt.Errorf("maximum orders per day (%d) must be > minimum (%d): %w", c.MaxOrdersPerDay, c.MinOrdersPerDay, models.ErrInvalidInput)
	case c.MinQuantityPerOrder <= 0:
		return fmt.Errorf("minimum quantity per order must be > 0, got %d: %w", c.MinQuantityPerOrder, models.ErrInvalidInput)
	case c.MaxQuantityPerOrder < c.MinQuantityPerOrder:
		return fmt.Errorf("maximum quantity per order (%d) must be >= minimum (%d): %w", c.MaxQuantityPerOrder, c.MinQuantityPerOrder, models.ErrInvalidInput)
	}
	return nil
}

// Generator produces each day's customer orders. The same seed and the same
// sequence of calls against the same catalog yield the same orders.
type Generator struct {
	cfg Config
	rng *rand.Rand
	ids models.IDSequence
}

// NewGenerator validates cfg and seeds the generator's random stream.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
	}, nil
}

// Config returns the generator's bounds.
func (g *Generator) Config() Config {
	return g.cfg
}

// GenerateOrders draws an order count, then a product (with replacement) and
// a quantity for each order. Every order starts pending.
func (g *Generator) GenerateOrders(products []models.Product) ([]*models.CustomerOrder, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("generate orders: products list must not be empty: %w", models.ErrInvalidInput)
	}

	count := g.between(g.cfg.MinOrdersPerDay, g.cfg.MaxOrdersPerDay)
	orders := make([]*models.CustomerOrder, 0, count)

	for range count {
		product := products[g.rng.IntN(len(products))]
		quantity := g.between(g.cfg.MinQuantityPerOrder, g.cfg.MaxQuantityPerOrder)

		order, err := models.NewCustomerOrder(g.ids.Next(), product, quantity)
		if err != nil {
			return nil, fmt.Errorf("generate orders: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// between draws uniformly from [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
