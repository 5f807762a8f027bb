package stock

// Calculate derives the closing stock, the reorder quantity and the POS/manual
// outflow difference from the editable inputs. Pure, no I/O; absent inputs
// arrive as zero and negative inputs are coerced to zero before the
// arithmetic.
//
// The reorder formula multiplies keluar_manual only, not total outflow. This
// is a deliberate policy of the reorder model, not an omission.
func Calculate(stockAwal, keluarManual, keluarPos, daysToOrder int) (stockAkhir, qtyDiPesan, selisih int) {
	stockAwal = clampZero(stockAwal)
	keluarManual = clampZero(keluarManual)
	keluarPos = clampZero(keluarPos)

	totalKeluar := keluarManual + keluarPos

	// Closing stock may go negative: a shortfall is reported, not hidden.
	stockAkhir = stockAwal - totalKeluar

	if daysToOrder > 0 {
		qtyDiPesan = clampZero(keluarManual*daysToOrder - stockAkhir)
	}

	selisih = keluarPos - keluarManual
	return stockAkhir, qtyDiPesan, selisih
}

// ValidDaysToOrder reports whether d is an allowed reorder multiplier.
func ValidDaysToOrder(d int) bool {
	return d >= 0 && d <= 3
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
