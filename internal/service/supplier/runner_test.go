package supplier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/shopsim/internal/domain/models"
)

var milk = models.Product{
	ID:            1,
	Name:          "Milk",
	PurchasePrice: decimal.NewFromInt(10),
	SellPrice:     decimal.NewFromInt(15),
	Space:         decimal.RequireFromString("0.1"),
}

func newShop() *models.Shop {
	return models.NewShop(models.NewWarehouse(decimal.NewFromInt(100)), decimal.NewFromInt(300))
}

func newOrder(t *testing.T, quantity, deliveryDay int) *models.SupplierOrder {
	t.Helper()
	line, err := models.NewSupplierOrderLine(milk, quantity)
	require.NoError(t, err)
	order, err := models.NewSupplierOrder([]models.SupplierOrderLine{line}, deliveryDay)
	require.NoError(t, err)
	return order
}

func TestRunForDay_RejectsNegativeDay(t *testing.T) {
	runner := NewRunner(nil, newOrder(t, 1, 0))

	_, err := runner.RunForDay(newShop(), -1)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestRunForDay_DeliversOnlyOrdersDueToday(t *testing.T) {
	shop := newShop()
	dueFirst := newOrder(t, 5, 2)
	later := newOrder(t, 7, 3)
	dueSecond := newOrder(t, 1, 2)
	runner := NewRunner(nil, dueFirst, later, dueSecond)

	delivered, err := runner.RunForDay(shop, 2)

	require.NoError(t, err)
	assert.Equal(t, []*models.SupplierOrder{dueFirst, dueSecond}, delivered)
	assert.Equal(t, models.SupplierOrderOrdered, later.Status())
	assert.Equal(t, 6, shop.Warehouse().Quantity(milk))
	assert.Equal(t, []*models.SupplierOrder{later}, runner.Pending())
}

func TestRunForDay_SkipsDeliveredOrders(t *testing.T) {
	shop := newShop()
	order := newOrder(t, 5, 1)
	runner := NewRunner(nil, order)

	first, err := runner.RunForDay(shop, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := runner.RunForDay(shop, 1)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, 5, shop.Warehouse().Quantity(milk))
}

func TestRunForDay_NothingDue(t *testing.T) {
	runner := NewRunner(nil, newOrder(t, 5, 4))

	delivered, err := runner.RunForDay(newShop(), 0)

	require.NoError(t, err)
	assert.Empty(t, delivered)
}

func TestTrack_AppendsInOrder(t *testing.T) {
	runner := NewRunner(nil)
	a := newOrder(t, 1, 1)
	b := newOrder(t, 2, 1)

	runner.Track(a)
	runner.Track(b)

	assert.Equal(t, []*models.SupplierOrder{a, b}, runner.Orders())
}

func TestRunForDay_StopsOnDeliveryFailure(t *testing.T) {
	shop := models.NewShop(models.NewWarehouse(decimal.NewFromInt(1), models.WithStrictCapacity()), decimal.NewFromInt(300))
	fits := newOrder(t, 5, 1)
	overflows := newOrder(t, 50, 1)
	after := newOrder(t, 1, 1)
	runner := NewRunner(nil, fits, overflows, after)

	delivered, err := runner.RunForDay(shop, 1)

	assert.ErrorIs(t, err, models.ErrOverCapacity)
	assert.Equal(t, []*models.SupplierOrder{fits}, delivered)
	assert.Equal(t, models.SupplierOrderOrdered, overflows.Status())
	assert.Equal(t, models.SupplierOrderOrdered, after.Status())
}
