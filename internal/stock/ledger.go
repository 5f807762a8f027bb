package stock

import (
	"stock-tracker-backend/internal/models"

	"gorm.io/gorm"
)

// LedgerTotals are the running aggregates of a product's ledger rows.
// CurrentStock counts IN as positive, OUT as negative and ADJUSTMENT as-is.
type LedgerTotals struct {
	TotalIn      int
	TotalOut     int
	CurrentStock int
}

func ledgerTotals(tx *gorm.DB, productID uint) (LedgerTotals, error) {
	var t LedgerTotals
	err := tx.Model(&models.StockTransaction{}).
		Select(`
			COALESCE(SUM(CASE WHEN transaction_type = 'IN' THEN quantity ELSE 0 END), 0) AS total_in,
			COALESCE(SUM(CASE WHEN transaction_type = 'OUT' THEN quantity ELSE 0 END), 0) AS total_out,
			COALESCE(SUM(CASE WHEN transaction_type = 'IN' THEN quantity
			              WHEN transaction_type = 'OUT' THEN -quantity
			              ELSE quantity END), 0) AS current_stock`).
		Where("product_id = ?", productID).
		Scan(&t).Error
	return t, err
}

// Adjustment is one planned ADJUSTMENT ledger row.
type Adjustment struct {
	Quantity      int
	PreviousStock int
	NewStock      int
	Reason        string
}

// PlanAdjustments reconciles the ledger's running totals with a newly edited
// stock_awal and total outflow. A dimension that did not move plans no row,
// so an edit yields zero, one or two ADJUSTMENT entries. Prior ledger rows
// are never rewritten; reconciliation is strictly additive.
func PlanAdjustments(t LedgerTotals, newStockAwal, newKeluar int) []Adjustment {
	var plans []Adjustment

	if delta := newStockAwal - t.TotalIn; delta != 0 {
		plans = append(plans, Adjustment{
			Quantity:      absInt(delta),
			PreviousStock: t.TotalIn,
			NewStock:      newStockAwal,
			Reason:        models.ReasonStockAwalAdjustment,
		})
	}

	if delta := newKeluar - t.TotalOut; delta != 0 {
		plans = append(plans, Adjustment{
			Quantity:      absInt(delta),
			PreviousStock: t.TotalOut,
			NewStock:      newKeluar,
			Reason:        models.ReasonKeluarAdjustment,
		})
	}

	return plans
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
