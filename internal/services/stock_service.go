// internal/services/stock_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

// StockService is the only writer of product stock outside the order flow.
// Every stock change it applies leaves exactly one movement row behind.
type StockService struct {
	db *gorm.DB
}

type AdjustStockRequest struct {
	Delta int    `json:"delta" validate:"required"`
	Notes string `json:"notes,omitempty" validate:"max=500"`
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{db: db}
}

// AdjustStock applies a signed stock delta and records the movement in the
// same transaction. Negative deltas that would take stock below zero are
// rejected without touching either table.
func (s *StockService) AdjustStock(actorID, productID uuid.UUID, delta int, notes string) (*models.Product, error) {
	if delta == 0 {
		return nil, fmt.Errorf("delta must be non-zero: %w", ErrNegativeStock)
	}

	var product models.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product: %w", ErrNotFound)
			}
			return fmt.Errorf("database error: %w", err)
		}

		if delta < 0 {
			// Guarded decrement; the WHERE clause makes the check-and-write
			// atomic against concurrent adjustments.
			result := tx.Model(&models.Product{}).
				Where("id = ? AND current_stock >= ?", productID, -delta).
				UpdateColumn("current_stock", gorm.Expr("current_stock + ?", delta))
			if result.Error != nil {
				return fmt.Errorf("failed to update stock: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrNegativeStock
			}
		} else {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", productID).
				UpdateColumn("current_stock", gorm.Expr("current_stock + ?", delta)).Error; err != nil {
				return fmt.Errorf("failed to update stock: %w", err)
			}
		}

		movement := &models.ProductMovement{
			ProductID:    productID,
			MovementType: models.MovementTypeForDelta(delta),
			Quantity:     abs(delta),
			UserID:       actorID,
			Notes:        notes,
		}
		if err := tx.Create(movement).Error; err != nil {
			return fmt.Errorf("failed to record movement: %w", err)
		}

		return tx.First(&product, productID).Error
	})

	if err != nil {
		return nil, err
	}

	return &product, nil
}

// ListMovements returns the audit trail for a product, newest-first.
func (s *StockService) ListMovements(productID uuid.UUID, params utils.PaginationParams) ([]models.ProductMovement, int64, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fmt.Errorf("product: %w", ErrNotFound)
		}
		return nil, 0, fmt.Errorf("database error: %w", err)
	}

	query := s.db.Model(&models.ProductMovement{}).Where("product_id = ?", productID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count movements: %w", err)
	}

	var movements []models.ProductMovement
	if err := utils.ApplyPagination(query.Preload("User").Order("created_at DESC"), params).
		Find(&movements).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch movements: %w", err)
	}

	return movements, total, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
