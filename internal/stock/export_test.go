package stock

import (
	"bytes"
	"encoding/csv"
	"testing"

	"stock-tracker-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	products := []models.Product{
		{Name: "Beras", StockAwal: 100, KeluarManual: 10, KeluarPos: 5, StockAkhir: 85, QtyDiPesan: 0, Selisih: -5, DaysToOrder: 3},
		{Name: "Gula, halus", StockAwal: 10, KeluarManual: 20, StockAkhir: -10, QtyDiPesan: 70, Selisih: -20, DaysToOrder: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, products))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{"Beras", "100", "10", "5", "85", "0", "-5", "3"}, records[1])
	// Commas in product names survive the round trip.
	assert.Equal(t, []string{"Gula, halus", "10", "20", "0", "-10", "70", "-20", "3"}, records[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
