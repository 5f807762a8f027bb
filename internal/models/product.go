package models

import "time"

// DefaultDaysToOrder is applied when a product is created or when an update
// supplies no multiplier and the row has none.
const DefaultDaysToOrder = 3

// Product is the current-state stock row per inventory item. StockAkhir,
// QtyDiPesan and Selisih are derived; they are recomputed from the editable
// inputs on every write and never trusted from the client.
type Product struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	StockAwal    int    `gorm:"not null;default:0" json:"stock_awal"`
	KeluarManual int    `gorm:"not null;default:0" json:"keluar_manual"`
	KeluarPos    int    `gorm:"not null;default:0" json:"keluar_pos"`
	// StockAkhir may go negative; a shortfall is surfaced, not clamped.
	StockAkhir  int       `gorm:"not null;default:0" json:"stock_akhir"`
	QtyDiPesan  int       `gorm:"not null;default:0" json:"qty_di_pesan"`
	Selisih     int       `gorm:"not null;default:0" json:"selisih"`
	DaysToOrder int       `gorm:"not null;default:3" json:"days_to_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
