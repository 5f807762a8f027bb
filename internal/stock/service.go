package stock

import (
	"context"
	"errors"
	"time"

	"stock-tracker-backend/internal/apperror"
	"stock-tracker-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service orchestrates stock reads and writes. Every logical mutation runs in
// a single database transaction: the product write and its ledger appends
// either all commit or none do.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListStock returns every product with its current stock figures, ordered by
// name.
func (s *Service) ListStock(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("name asc").Find(&products).Error; err != nil {
		return nil, apperror.Store("Failed to fetch current stock", err)
	}
	return products, nil
}

type UpdateStockInput struct {
	ID           uint
	Name         string
	StockAwal    int
	KeluarManual int
	KeluarPos    int
	// DaysToOrder nil keeps the product's stored multiplier.
	DaysToOrder *int
	UpdatedBy   string
}

// UpdateStock is the product edit path: it locks the row, recomputes the
// derived fields from the submitted inputs and reconciles the ledger with
// ADJUSTMENT entries, all inside one transaction. The row lock serializes
// concurrent edits of the same product so no update is silently lost.
func (s *Service) UpdateStock(ctx context.Context, in UpdateStockInput) (*models.Product, error) {
	if in.ID == 0 || in.Name == "" {
		return nil, apperror.Validation("Missing required fields: id and name")
	}
	if in.StockAwal < 0 || in.KeluarManual < 0 || in.KeluarPos < 0 {
		return nil, apperror.Validation("Stock values cannot be negative")
	}
	if in.DaysToOrder != nil && !ValidDaysToOrder(*in.DaysToOrder) {
		return nil, apperror.Validation("days_to_order must be one of 0, 1, 2, 3")
	}

	var updated models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "id = ?", in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Product not found")
			}
			return apperror.Store("Failed to fetch product", err)
		}

		days := p.DaysToOrder
		if in.DaysToOrder != nil {
			days = *in.DaysToOrder
		}
		if !ValidDaysToOrder(days) {
			days = models.DefaultDaysToOrder
		}

		totals, err := ledgerTotals(tx, p.ID)
		if err != nil {
			return apperror.Store("Failed to aggregate stock transactions", err)
		}

		stockAkhir, qtyDiPesan, selisih := Calculate(in.StockAwal, in.KeluarManual, in.KeluarPos, days)

		p.Name = in.Name
		p.StockAwal = in.StockAwal
		p.KeluarManual = in.KeluarManual
		p.KeluarPos = in.KeluarPos
		p.StockAkhir = stockAkhir
		p.QtyDiPesan = qtyDiPesan
		p.Selisih = selisih
		p.DaysToOrder = days

		if err := tx.Save(&p).Error; err != nil {
			return apperror.Store("Failed to update stock", err)
		}

		for _, plan := range PlanAdjustments(totals, in.StockAwal, in.KeluarManual+in.KeluarPos) {
			entry := models.StockTransaction{
				ProductID:       p.ID,
				TransactionType: models.TransactionAdjustment,
				Quantity:        plan.Quantity,
				PreviousStock:   plan.PreviousStock,
				NewStock:        plan.NewStock,
				Reason:          plan.Reason,
				CreatedBy:       createdBy(in.UpdatedBy),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return apperror.Store("Failed to record stock adjustment", err)
			}
		}

		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// PerformRollover advances every product into the next period in one batch.
// The pre-rollover snapshot is captured before any row is touched and the
// whole batch commits atomically: a failed product rolls the entire period
// transition back. Each product gets an IN ledger row for the carried
// reorder quantity, tagged with a shared batch reference number.
func (s *Service) PerformRollover(ctx context.Context, performedBy string) (exported, updated []models.Product, err error) {
	batchRef := uuid.New().String()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var snapshot []models.Product
		if err := tx.Order("name asc").Find(&snapshot).Error; err != nil {
			return apperror.Store("Failed to fetch current stock data", err)
		}
		exported = snapshot

		for _, p := range snapshot {
			rolled := ApplyRollover(p)
			if err := tx.Save(&rolled).Error; err != nil {
				return apperror.Store("Failed to perform rollover", err)
			}

			entry := models.StockTransaction{
				ProductID:       p.ID,
				TransactionType: models.TransactionIn,
				Quantity:        p.QtyDiPesan,
				PreviousStock:   p.StockAkhir,
				NewStock:        rolled.StockAwal,
				Reason:          models.ReasonDailyRollover,
				ReferenceNumber: batchRef,
				CreatedBy:       createdBy(performedBy),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return apperror.Store("Failed to record rollover transaction", err)
			}
		}

		if err := tx.Order("name asc").Find(&updated).Error; err != nil {
			return apperror.Store("Failed to fetch updated stock data", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return exported, updated, nil
}

type RolloverStatus struct {
	LastRolloverAt *time.Time `json:"last_rollover_at"`
	RanToday       bool       `json:"ran_today"`
	Products       int64      `json:"products"`
}

// GetRolloverStatus reports when the last rollover batch ran. The rollover
// itself stays an on-demand call; the UI's "automatic midnight rollover" is
// an external scheduler hitting the rollover endpoint once a day.
func (s *Service) GetRolloverStatus(ctx context.Context) (*RolloverStatus, error) {
	status := &RolloverStatus{}

	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&status.Products).Error; err != nil {
		return nil, apperror.Store("Failed to fetch rollover status", err)
	}

	var last models.StockTransaction
	err := s.db.WithContext(ctx).
		Where("reason = ?", models.ReasonDailyRollover).
		Order("created_at DESC").
		First(&last).Error
	switch {
	case err == nil:
		t := last.CreatedAt
		status.LastRolloverAt = &t
		now := time.Now()
		status.RanToday = t.Year() == now.Year() && t.YearDay() == now.YearDay()
	case errors.Is(err, gorm.ErrRecordNotFound):
		// never rolled over yet
	default:
		return nil, apperror.Store("Failed to fetch rollover status", err)
	}

	return status, nil
}

// UpdateDaysForAll sets the reorder multiplier on every product and
// recomputes the derived fields, one transaction for the whole batch.
func (s *Service) UpdateDaysForAll(ctx context.Context, days int) ([]models.Product, error) {
	if !ValidDaysToOrder(days) {
		return nil, apperror.Validation("days_to_order must be one of 0, 1, 2, 3")
	}

	var updated []models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var products []models.Product
		if err := tx.Order("name asc").Find(&products).Error; err != nil {
			return apperror.Store("Failed to fetch current stock", err)
		}

		for i := range products {
			p := &products[i]
			p.DaysToOrder = days
			p.StockAkhir, p.QtyDiPesan, p.Selisih = Calculate(p.StockAwal, p.KeluarManual, p.KeluarPos, days)
			if err := tx.Save(p).Error; err != nil {
				return apperror.Store("Failed to update days_to_order", err)
			}
		}

		updated = products
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func createdBy(name string) string {
	if name == "" {
		return "system"
	}
	return name
}
