package stock

import "stock-tracker-backend/internal/models"

// ApplyRollover advances one product into the next period. The closing
// balance plus whatever was on order becomes the new opening balance, the
// period counters reset and days_to_order is preserved. Pure; the caller
// persists the result.
func ApplyRollover(p models.Product) models.Product {
	newStockAwal := p.StockAkhir + p.QtyDiPesan

	p.StockAwal = newStockAwal
	p.KeluarManual = 0
	p.KeluarPos = 0
	p.StockAkhir = newStockAwal
	p.QtyDiPesan = 0
	p.Selisih = 0
	return p
}
