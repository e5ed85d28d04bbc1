// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Description  string  `json:"description" validate:"max=2000"`
	Category     string  `json:"category" validate:"required,max=100"`
	UnitPrice    float64 `json:"unit_price" validate:"required,gt=0"`
	CurrentStock int     `json:"current_stock" validate:"min=0"`
	UnitsPerCase int     `json:"units_per_case,omitempty" validate:"omitempty,min=1"`
	UnitSize     string  `json:"unit_size,omitempty" validate:"max=100"`
	ImageURL     string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category     *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	UnitPrice    *float64 `json:"unit_price,omitempty" validate:"omitempty,gt=0"`
	CurrentStock *int     `json:"current_stock,omitempty" validate:"omitempty,min=0"`
	UnitsPerCase *int     `json:"units_per_case,omitempty" validate:"omitempty,min=1"`
	UnitSize     *string  `json:"unit_size,omitempty" validate:"omitempty,max=100"`
	ImageURL     *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProduct inserts the product together with its initial stock_added
// movement so the audit trail reconciles to current stock from day one.
func (s *ProductService) CreateProduct(adminID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Category:     strings.ToLower(req.Category),
		UnitPrice:    req.UnitPrice,
		CurrentStock: req.CurrentStock,
		UnitsPerCase: req.UnitsPerCase,
		UnitSize:     req.UnitSize,
		TotalUnits:   req.CurrentStock,
		ImageURL:     req.ImageURL,
	}
	if product.UnitsPerCase == 0 {
		product.UnitsPerCase = 1
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		if req.CurrentStock > 0 {
			movement := &models.ProductMovement{
				ProductID:    product.ID,
				MovementType: models.MovementTypeStockAdded,
				Quantity:     req.CurrentStock,
				UserID:       adminID,
				Notes:        "Initial stock",
			}
			if err := tx.Create(movement).Error; err != nil {
				return fmt.Errorf("failed to record initial stock: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// ListProducts returns all products newest-first, with optional category
// and free-text filters.
func (s *ProductService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" {
		query = query.Where("category = ?", strings.ToLower(params.Category))
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "unit_price", "current_stock"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// UpdateProduct rewrites the provided fields. A stock change goes through the
// same transaction with a corrective movement, so direct edits stay on the
// audit trail.
func (s *ProductService) UpdateProduct(adminID, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = strings.ToLower(*req.Category)
	}
	if req.UnitPrice != nil {
		updates["unit_price"] = *req.UnitPrice
	}
	if req.UnitsPerCase != nil {
		updates["units_per_case"] = *req.UnitsPerCase
	}
	if req.UnitSize != nil {
		updates["unit_size"] = *req.UnitSize
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	stockDiff := 0
	if req.CurrentStock != nil {
		stockDiff = *req.CurrentStock - product.CurrentStock
		updates["current_stock"] = *req.CurrentStock
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&product).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update product: %w", err)
			}
		}

		if stockDiff != 0 {
			movement := &models.ProductMovement{
				ProductID:    product.ID,
				MovementType: models.MovementTypeForDelta(stockDiff),
				Quantity:     abs(stockDiff),
				UserID:       adminID,
				Notes:        "Stock updated via product edit",
			}
			if err := tx.Create(movement).Error; err != nil {
				return fmt.Errorf("failed to record stock correction: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.db.First(&product, id)

	return &product, nil
}

// DeleteProduct hard-deletes a product. Products referenced by orders are
// kept to avoid dangling order rows; movements stay behind as history.
func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product: %w", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}

	var orderCount int64
	if err := s.db.Model(&models.Order{}).Where("product_id = ?", id).
		Count(&orderCount).Error; err != nil {
		return fmt.Errorf("failed to check orders: %w", err)
	}

	if orderCount > 0 {
		return ErrHasOrders
	}

	if err := s.db.Unscoped().Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
