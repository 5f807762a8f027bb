package stock

import (
	"encoding/csv"
	"io"
	"strconv"

	"stock-tracker-backend/internal/models"
)

var exportHeader = []string{
	"name", "stock_awal", "keluar_manual", "keluar_pos",
	"stock_akhir", "qty_di_pesan", "selisih", "days_to_order",
}

// WriteCSV writes one row per product with the eight display columns. Used
// for the archival download and for exporting the pre-rollover snapshot.
func WriteCSV(w io.Writer, products []models.Product) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, p := range products {
		row := []string{
			p.Name,
			strconv.Itoa(p.StockAwal),
			strconv.Itoa(p.KeluarManual),
			strconv.Itoa(p.KeluarPos),
			strconv.Itoa(p.StockAkhir),
			strconv.Itoa(p.QtyDiPesan),
			strconv.Itoa(p.Selisih),
			strconv.Itoa(p.DaysToOrder),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
