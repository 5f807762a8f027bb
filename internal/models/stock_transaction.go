package models

import "time"

type TransactionType string

const (
	TransactionIn         TransactionType = "IN"
	TransactionOut        TransactionType = "OUT"
	TransactionAdjustment TransactionType = "ADJUSTMENT"
)

// ValidTransactionType reports whether t is one of IN/OUT/ADJUSTMENT.
func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionIn, TransactionOut, TransactionAdjustment:
		return true
	}
	return false
}

// Fixed reason strings written by the services. Queries filter on these, so
// they must stay stable.
const (
	ReasonProductCreated      = "Product created"
	ReasonStockAwalAdjustment = "Manual stock_awal adjustment"
	ReasonKeluarAdjustment    = "Manual keluar adjustment"
	ReasonDailyRollover       = "Daily rollover"
)

// StockTransaction is an append-only ledger row. Rows are created, never
// updated or deleted. PreviousStock/NewStock snapshot the running total
// around the movement so the ledger can be audited without replaying it.
type StockTransaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ProductID       uint            `gorm:"index;not null" json:"product_id"`
	Product         Product         `json:"-"`
	TransactionType TransactionType `gorm:"size:20;index;not null" json:"transaction_type"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	PreviousStock   int             `gorm:"not null" json:"previous_stock"`
	NewStock        int             `gorm:"not null" json:"new_stock"`
	Reason          string          `gorm:"size:500" json:"reason"`
	ReferenceNumber string          `gorm:"size:100" json:"reference_number"`
	CreatedBy       string          `gorm:"size:100;not null;default:system" json:"created_by"`
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`
}
