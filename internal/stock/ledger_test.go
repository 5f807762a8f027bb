package stock

import (
	"testing"

	"stock-tracker-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanAdjustmentsNoChange(t *testing.T) {
	totals := LedgerTotals{TotalIn: 100, TotalOut: 30, CurrentStock: 70}

	plans := PlanAdjustments(totals, 100, 30)
	assert.Empty(t, plans, "matching targets plan no ledger rows")
}

func TestPlanAdjustmentsStockAwalOnly(t *testing.T) {
	totals := LedgerTotals{TotalIn: 100, TotalOut: 30}

	plans := PlanAdjustments(totals, 120, 30)
	require.Len(t, plans, 1)

	assert.Equal(t, 20, plans[0].Quantity)
	assert.Equal(t, 100, plans[0].PreviousStock)
	assert.Equal(t, 120, plans[0].NewStock)
	assert.Equal(t, models.ReasonStockAwalAdjustment, plans[0].Reason)
}

func TestPlanAdjustmentsKeluarOnly(t *testing.T) {
	totals := LedgerTotals{TotalIn: 100, TotalOut: 30}

	// Target below the aggregate: quantity is the magnitude of the delta.
	plans := PlanAdjustments(totals, 100, 25)
	require.Len(t, plans, 1)

	assert.Equal(t, 5, plans[0].Quantity)
	assert.Equal(t, 30, plans[0].PreviousStock)
	assert.Equal(t, 25, plans[0].NewStock)
	assert.Equal(t, models.ReasonKeluarAdjustment, plans[0].Reason)
}

func TestPlanAdjustmentsBothDimensions(t *testing.T) {
	totals := LedgerTotals{TotalIn: 0, TotalOut: 0}

	plans := PlanAdjustments(totals, 100, 15)
	require.Len(t, plans, 2)

	assert.Equal(t, models.ReasonStockAwalAdjustment, plans[0].Reason)
	assert.Equal(t, 100, plans[0].Quantity)
	assert.Equal(t, models.ReasonKeluarAdjustment, plans[1].Reason)
	assert.Equal(t, 15, plans[1].Quantity)

	for _, plan := range plans {
		assert.Greater(t, plan.Quantity, 0, "zero-delta dimensions never plan a row")
	}
}
