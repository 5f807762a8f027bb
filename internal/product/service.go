package product

import (
	"context"
	"errors"

	"stock-tracker-backend/internal/apperror"
	"stock-tracker-backend/internal/models"

	"gorm.io/gorm"
)

// Service handles product creation and reads. Stock edits live in the stock
// package; products are never deleted.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create inserts a zeroed product row plus its birth ledger entry (IN with
// quantity 0) in one transaction. Names are matched exactly and
// case-sensitively; a duplicate leaves the store untouched.
func (s *Service) Create(ctx context.Context, name, createdBy string) (*models.Product, error) {
	if name == "" {
		return nil, apperror.Validation("Product name is required")
	}

	var created models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.Where("name = ?", name).First(&existing).Error
		switch {
		case err == nil:
			return apperror.Conflict("Product with this name already exists")
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return apperror.Store("Failed to create product", err)
		}

		created = models.Product{
			Name:        name,
			DaysToOrder: models.DefaultDaysToOrder,
		}
		if err := tx.Create(&created).Error; err != nil {
			return apperror.Store("Failed to create product", err)
		}

		birth := models.StockTransaction{
			ProductID:       created.ID,
			TransactionType: models.TransactionIn,
			Quantity:        0,
			PreviousStock:   0,
			NewStock:        0,
			Reason:          models.ReasonProductCreated,
			CreatedBy:       createdBy,
		}
		if err := tx.Create(&birth).Error; err != nil {
			return apperror.Store("Failed to create product", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Product not found")
		}
		return nil, apperror.Store("Failed to fetch product", err)
	}
	return &p, nil
}
