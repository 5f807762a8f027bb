package stock

import (
	"testing"

	"stock-tracker-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyRollover(t *testing.T) {
	p := models.Product{
		ID:           1,
		Name:         "Widget",
		StockAwal:    80,
		KeluarManual: 20,
		KeluarPos:    10,
		StockAkhir:   50,
		QtyDiPesan:   20,
		Selisih:      -10,
		DaysToOrder:  2,
	}

	rolled := ApplyRollover(p)

	assert.Equal(t, 70, rolled.StockAwal, "closing balance plus ordered qty carries into the new opening balance")
	assert.Equal(t, 0, rolled.KeluarManual)
	assert.Equal(t, 0, rolled.KeluarPos)
	assert.Equal(t, 70, rolled.StockAkhir)
	assert.Equal(t, 0, rolled.QtyDiPesan)
	assert.Equal(t, 0, rolled.Selisih)
	assert.Equal(t, 2, rolled.DaysToOrder, "days_to_order is preserved")

	// Identity fields untouched.
	assert.Equal(t, p.ID, rolled.ID)
	assert.Equal(t, p.Name, rolled.Name)
}

func TestApplyRolloverIdle(t *testing.T) {
	// A product with no outflow and nothing on order keeps its opening stock.
	p := models.Product{StockAwal: 40, StockAkhir: 40, DaysToOrder: 3}

	rolled := ApplyRollover(p)

	assert.Equal(t, 40, rolled.StockAwal)
	assert.Equal(t, 40, rolled.StockAkhir)

	// And rolling over again changes nothing.
	again := ApplyRollover(rolled)
	assert.Equal(t, rolled, again)
}

func TestApplyRolloverNegativeClosing(t *testing.T) {
	// A shortfall carries through: the new period opens in the red unless
	// the ordered quantity covers it.
	p := models.Product{StockAkhir: -10, QtyDiPesan: 70}

	rolled := ApplyRollover(p)

	assert.Equal(t, 60, rolled.StockAwal)
	assert.Equal(t, 60, rolled.StockAkhir)
}
