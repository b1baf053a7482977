package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_AddLineAccumulatesTotals(t *testing.T) {
	shop := NewShop(NewWarehouse(dec("100")), dec("300"))
	draft := NewSupplierOrderDraft()

	_, err := draft.AddLine(shop, newMilk(), 5)
	require.NoError(t, err)
	_, err = draft.AddLine(shop, newBread(), 10)
	require.NoError(t, err)

	assert.Equal(t, 2, draft.Len())
	assertDecimal(t, "160", draft.TotalCost())
	assertDecimal(t, "2.5", draft.TotalSpace())
	assertDecimal(t, "300", shop.Budget())
}

func TestDraft_AddLineRejectsInvalidQuantity(t *testing.T) {
	shop := NewShop(NewWarehouse(dec("100")), dec("300"))
	draft := NewSupplierOrderDraft()

	_, err := draft.AddLine(shop, newMilk(), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 0, draft.Len())
}

func TestDraft_AddLineChecksProspectiveBudget(t *testing.T) {
	shop := NewShop(NewWarehouse(dec("100")), dec("100"))
	draft := NewSupplierOrderDraft()

	_, err := draft.AddLine(shop, newMilk(), 6)
	require.NoError(t, err)

	_, err = draft.AddLine(shop, newMilk(), 5)
	assert.ErrorIs(t, err, ErrOverBudget)
	assert.Equal(t, 1, draft.Len())

	_, err = draft.AddLine(shop, newMilk(), 4)
	assert.NoError(t, err, "exactly the budget is allowed")
}

func TestDraft_AddLineChecksProspectiveSpace(t *testing.T) {
	w := NewWarehouse(dec("10"))
	require.NoError(t, w.AddStock(newMilk(), 90))
	shop := NewShop(w, dec("10000"))
	draft := NewSupplierOrderDraft()

	_, err := draft.AddLine(shop, newBread(), 3)
	require.NoError(t, err)

	_, err = draft.AddLine(shop, newBread(), 3)
	assert.ErrorIs(t, err, ErrOverCapacity)
	assert.Equal(t, 1, draft.Len())
}

func TestDraft_ConfirmEmpty(t *testing.T) {
	shop := NewShop(NewWarehouse(dec("100")), dec("300"))

	_, err := NewSupplierOrderDraft().Confirm(shop, 2)
	assert.ErrorIs(t, err, ErrEmptyDraft)
}

func TestDraft_ConfirmPaysOnPlacement(t *testing.T) {
	shop := NewShop(NewWarehouse(dec("100")), dec("300"))
	draft := NewSupplierOrderDraft()
	_, err := draft.AddLine(shop, newMilk(), 5)
	require.NoError(t, err)

	order, err := draft.Confirm(shop, 2)

	require.NoError(t, err)
	assert.Equal(t, SupplierOrderOrdered, order.Status())
	assert.Equal(t, 2, order.DeliveryDay())
	assert.Equal(t, draft.Lines(), order.Lines())
	assertDecimal(t, "250", shop.Budget())
	assert.Equal(t, 0, shop.Warehouse().Quantity(newMilk()))
	assert.True(t, draft.Confirmed())
}

func TestDraft_ConfirmRevalidatesBudget(t *testing.T) {
	shop := NewShop(NewWarehouse(dec("100")), dec("300"))
	draft := NewSupplierOrderDraft()
	_, err := draft.AddLine(shop, newMilk(), 20)
	require.NoError(t, err)

	shop.Pay(dec("150"))

	_, err = draft.Confirm(shop, 2)
	assert.ErrorIs(t, err, ErrOverBudget)
	assertDecimal(t, "150", shop.Budget())
	assert.False(t, draft.Confirmed())
}

func TestDraft_ConfirmRevalidatesSpace(t *testing.T) {
	shop := NewShop(NewWarehouse(dec("10")), dec("1000"))
	draft := NewSupplierOrderDraft()
	_, err := draft.AddLine(shop, newMilk(), 50)
	require.NoError(t, err)

	require.NoError(t, shop.Warehouse().AddStock(newBread(), 30))

	_, err = draft.Confirm(shop, 2)
	assert.ErrorIs(t, err, ErrOverCapacity)
	assertDecimal(t, "1000", shop.Budget())
}

func TestDraft_ConfirmRejectsNegativeDeliveryDay(t *testing.T) {
	shop := NewShop(NewWarehouse(dec("100")), dec("300"))
	draft := NewSupplierOrderDraft()
	_, err := draft.AddLine(shop, newMilk(), 1)
	require.NoError(t, err)

	_, err = draft.Confirm(shop, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assertDecimal(t, "300", shop.Budget())
}

func TestDraft_CannotBeReusedAfterConfirm(t *testing.T) {
	shop := NewShop(NewWarehouse(dec("100")), dec("300"))
	draft := NewSupplierOrderDraft()
	_, err := draft.AddLine(shop, newMilk(), 1)
	require.NoError(t, err)
	_, err = draft.Confirm(shop, 2)
	require.NoError(t, err)

	_, err = draft.AddLine(shop, newMilk(), 1)
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = draft.Confirm(shop, 2)
	assert.ErrorIs(t, err, ErrInvalidState)
	assertDecimal(t, "290", shop.Budget())
}
