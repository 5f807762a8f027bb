package stock

import (
	"context"
	"errors"
	"time"

	"stock-tracker-backend/internal/apperror"
	"stock-tracker-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

type TransactionFilter struct {
	ProductID       uint
	TransactionType models.TransactionType
	StartDate       string // "YYYY-MM-DD", inclusive
	EndDate         string // "YYYY-MM-DD", inclusive
	Page            int
	Limit           int
}

// TransactionItem is a ledger row joined with its product name for display.
type TransactionItem struct {
	ID              uint                   `json:"id"`
	ProductID       uint                   `json:"product_id"`
	ProductName     string                 `json:"product_name"`
	TransactionType models.TransactionType `json:"transaction_type"`
	Quantity        int                    `json:"quantity"`
	PreviousStock   int                    `json:"previous_stock"`
	NewStock        int                    `json:"new_stock"`
	Reason          string                 `json:"reason"`
	ReferenceNumber string                 `json:"reference_number"`
	CreatedBy       string                 `json:"created_by"`
	CreatedAt       time.Time              `json:"created_at"`
}

type TransactionPage struct {
	Transactions []TransactionItem `json:"transactions"`
	Pagination   Pagination        `json:"pagination"`
}

// ListTransactions pages through the ledger newest-first, with optional
// product, type and inclusive creation-date filters.
func (s *Service) ListTransactions(ctx context.Context, f TransactionFilter) (*TransactionPage, error) {
	if f.TransactionType != "" && !models.ValidTransactionType(f.TransactionType) {
		return nil, apperror.Validation("Transaction type must be IN, OUT, or ADJUSTMENT")
	}
	if f.StartDate != "" {
		if _, err := time.Parse(dateLayout, f.StartDate); err != nil {
			return nil, apperror.Validation("start_date format must be 'YYYY-MM-DD'")
		}
	}
	if f.EndDate != "" {
		if _, err := time.Parse(dateLayout, f.EndDate); err != nil {
			return nil, apperror.Validation("end_date format must be 'YYYY-MM-DD'")
		}
	}

	base := s.db.WithContext(ctx).Table("stock_transactions AS st")
	base = applyTransactionFilter(base, f)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperror.Store("Failed to fetch stock transactions", err)
	}

	pagination := NewPagination(f.Page, f.Limit, total)

	rows := s.db.WithContext(ctx).Table("stock_transactions AS st").
		Select("st.*, p.name AS product_name").
		Joins("LEFT JOIN products p ON p.id = st.product_id")
	rows = applyTransactionFilter(rows, f)

	items := make([]TransactionItem, 0, pagination.ItemsPerPage)
	if err := rows.
		Order("st.created_at DESC, st.id DESC").
		Limit(pagination.ItemsPerPage).
		Offset(pagination.Offset()).
		Scan(&items).Error; err != nil {
		return nil, apperror.Store("Failed to fetch stock transactions", err)
	}

	return &TransactionPage{Transactions: items, Pagination: pagination}, nil
}

func applyTransactionFilter(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.ProductID > 0 {
		q = q.Where("st.product_id = ?", f.ProductID)
	}
	if f.TransactionType != "" {
		q = q.Where("st.transaction_type = ?", f.TransactionType)
	}
	if f.StartDate != "" {
		q = q.Where("DATE(st.created_at) >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where("DATE(st.created_at) <= ?", f.EndDate)
	}
	return q
}

type CreateTransactionInput struct {
	ProductID       uint
	TransactionType models.TransactionType
	Quantity        int
	Reason          string
	ReferenceNumber string
	CreatedBy       string
}

// CreateTransaction appends a manual ledger entry. The running total is
// aggregated from the existing rows inside the same transaction, so the
// previous/new stock snapshots bracket the movement even under concurrent
// writers. ADJUSTMENT sets the running total to the given quantity; IN and
// OUT move it by the quantity.
func (s *Service) CreateTransaction(ctx context.Context, in CreateTransactionInput) (*models.StockTransaction, error) {
	if in.ProductID == 0 || in.TransactionType == "" || in.Quantity == 0 {
		return nil, apperror.Validation("Product ID, transaction type, and quantity are required")
	}
	if !models.ValidTransactionType(in.TransactionType) {
		return nil, apperror.Validation("Transaction type must be IN, OUT, or ADJUSTMENT")
	}
	if in.Quantity < 0 {
		return nil, apperror.Validation("Quantity must be positive")
	}

	var created models.StockTransaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "id = ?", in.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Product not found")
			}
			return apperror.Store("Failed to fetch product", err)
		}

		totals, err := ledgerTotals(tx, in.ProductID)
		if err != nil {
			return apperror.Store("Failed to aggregate stock transactions", err)
		}

		newStock := totals.CurrentStock
		switch in.TransactionType {
		case models.TransactionIn:
			newStock += in.Quantity
		case models.TransactionOut:
			newStock -= in.Quantity
		case models.TransactionAdjustment:
			newStock = in.Quantity
		}

		created = models.StockTransaction{
			ProductID:       in.ProductID,
			TransactionType: in.TransactionType,
			Quantity:        in.Quantity,
			PreviousStock:   totals.CurrentStock,
			NewStock:        newStock,
			Reason:          in.Reason,
			ReferenceNumber: in.ReferenceNumber,
			CreatedBy:       createdBy(in.CreatedBy),
		}
		if err := tx.Create(&created).Error; err != nil {
			return apperror.Store("Failed to create stock transaction", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
