// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type PlaceOrderRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// PlaceOrder creates the order, decrements stock and appends the purchase
// movement as one transaction. The decrement is guarded by the stock level in
// the WHERE clause, so of two concurrent orders competing for the last units
// exactly one commits; the loser sees ErrInsufficientStock and no writes.
func (s *OrderService) PlaceOrder(userID uuid.UUID, req *PlaceOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order *models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product: %w", ErrNotFound)
			}
			return fmt.Errorf("database error: %w", err)
		}

		if product.CurrentStock < req.Quantity {
			return ErrInsufficientStock
		}

		result := tx.Model(&models.Product{}).
			Where("id = ? AND current_stock >= ?", req.ProductID, req.Quantity).
			UpdateColumns(map[string]interface{}{
				"current_stock": gorm.Expr("current_stock - ?", req.Quantity),
				"sold_units":    gorm.Expr("sold_units + ?", req.Quantity),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update stock: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// Lost the race to a concurrent order.
			return ErrInsufficientStock
		}

		order = &models.Order{
			UserID:     userID,
			ProductID:  req.ProductID,
			Quantity:   req.Quantity,
			UnitPrice:  product.UnitPrice,
			TotalPrice: product.UnitPrice * float64(req.Quantity),
			Status:     models.OrderStatusConfirmed,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		movement := &models.ProductMovement{
			ProductID:    req.ProductID,
			MovementType: models.MovementTypePurchase,
			Quantity:     req.Quantity,
			UserID:       userID,
			Notes:        fmt.Sprintf("Order purchase - %d units", req.Quantity),
		}
		if err := tx.Create(movement).Error; err != nil {
			return fmt.Errorf("failed to record movement: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// Load relations for the response
	s.db.Preload("Product").First(order, order.ID)

	return order, nil
}

// ListOrders returns all orders for admins and only the caller's own orders
// otherwise, newest-first.
func (s *OrderService) ListOrders(userID uuid.UUID, isAdmin bool, params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).Preload("Product")

	if isAdmin {
		query = query.Preload("User")
	} else {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []models.Order
	if err := utils.ApplyPagination(query.Order("created_at DESC"), params).
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// GetOrder returns a single order; non-admins can only see their own.
func (s *OrderService) GetOrder(orderID, userID uuid.UUID, isAdmin bool) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Product").Preload("User").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && order.UserID != userID {
		return nil, fmt.Errorf("order: %w", ErrNotFound)
	}

	return &order, nil
}
