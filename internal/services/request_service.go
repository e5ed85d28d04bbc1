// internal/services/request_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

type RequestService struct {
	db *gorm.DB
}

type CreateRequestRequest struct {
	ProductName        string   `json:"product_name" validate:"required,min=2,max=255"`
	Description        string   `json:"description" validate:"max=2000"`
	PriceRange         string   `json:"price_range,omitempty" validate:"max=100"`
	EstimatedPrice     *float64 `json:"estimated_price,omitempty" validate:"omitempty,gt=0"`
	SupplierSuggestion string   `json:"supplier_suggestion,omitempty" validate:"max=255"`
	AmountWanted       float64  `json:"amount_wanted,omitempty" validate:"omitempty,gt=0"`
}

// UpdateRequestRequest is a partial update; nil fields are left untouched.
// Status, goal and notes are independent admin actions — setting a goal never
// changes status, and reaching a goal never approves a request.
type UpdateRequestRequest struct {
	Status     *models.RequestStatus `json:"status,omitempty"`
	Goal       *int                  `json:"goal,omitempty" validate:"omitempty,min=1"`
	AdminNotes *string               `json:"admin_notes,omitempty"`
}

// RequestWithProgress is the list view: the stored request plus the derived
// crowd-demand numbers.
type RequestWithProgress struct {
	models.ProductRequest
	TotalRequested     float64 `json:"total_requested"`
	ProgressPercentage float64 `json:"progress_percentage"`
	RemainingNeeded    float64 `json:"remaining_needed"`
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

func (s *RequestService) CreateRequest(userID uuid.UUID, req *CreateRequestRequest) (*models.ProductRequest, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request := &models.ProductRequest{
		UserID:             userID,
		ProductName:        req.ProductName,
		Description:        req.Description,
		PriceRange:         req.PriceRange,
		EstimatedPrice:     req.EstimatedPrice,
		SupplierSuggestion: req.SupplierSuggestion,
		AmountWanted:       req.AmountWanted,
		Status:             models.RequestStatusPending,
	}

	if err := s.db.Create(request).Error; err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	s.db.Preload("User").First(request, request.ID)

	return request, nil
}

// ListRequestsWithProgress returns all requests newest-first with supporters
// (and their identity) embedded and progress computed per request.
func (s *RequestService) ListRequestsWithProgress() ([]RequestWithProgress, error) {
	var requests []models.ProductRequest
	if err := s.db.
		Preload("User").
		Preload("Supports").
		Preload("Supports.User").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch requests: %w", err)
	}

	result := make([]RequestWithProgress, 0, len(requests))
	for _, request := range requests {
		result = append(result, RequestWithProgress{
			ProductRequest:     request,
			TotalRequested:     request.TotalRequested(),
			ProgressPercentage: request.ProgressPercentage(),
			RemainingNeeded:    request.RemainingNeeded(),
		})
	}

	return result, nil
}

func (s *RequestService) GetRequest(requestID uuid.UUID) (*models.ProductRequest, error) {
	var request models.ProductRequest
	if err := s.db.
		Preload("User").
		Preload("Supports").
		Preload("Supports.User").
		First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &request, nil
}

// SupportRequest adds the caller's support. The existence check gives a clear
// Conflict error; the composite unique index still backstops races, so a
// constraint violation maps to the same error.
func (s *RequestService) SupportRequest(userID, requestID uuid.UUID) (*models.RequestSupport, error) {
	var request models.ProductRequest
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var existing models.RequestSupport
	if err := s.db.Where("user_id = ? AND request_id = ?", userID, requestID).
		First(&existing).Error; err == nil {
		return nil, ErrAlreadySupported
	}

	support := &models.RequestSupport{
		UserID:    userID,
		RequestID: requestID,
	}
	if err := s.db.Create(support).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySupported
		}
		return nil, fmt.Errorf("failed to create support: %w", err)
	}

	s.db.Preload("User").First(support, support.ID)

	return support, nil
}

// RemoveSupport deletes the caller's support row. Removing support that does
// not exist is a no-op, which keeps client retries simple. The delete is
// unscoped: a soft-deleted row would still occupy the unique index and block
// re-supporting later.
func (s *RequestService) RemoveSupport(userID, requestID uuid.UUID) error {
	if err := s.db.Unscoped().
		Where("user_id = ? AND request_id = ?", userID, requestID).
		Delete(&models.RequestSupport{}).Error; err != nil {
		return fmt.Errorf("failed to remove support: %w", err)
	}
	return nil
}

// UpdateRequest applies an admin's partial edit of status, goal and notes.
func (s *RequestService) UpdateRequest(requestID uuid.UUID, req *UpdateRequestRequest) (*models.ProductRequest, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var request models.ProductRequest
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("invalid status %q: %w", *req.Status, ErrForbidden)
		}
		updates["status"] = *req.Status
	}
	if req.Goal != nil {
		updates["goal"] = *req.Goal
	}
	if req.AdminNotes != nil {
		updates["admin_notes"] = *req.AdminNotes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&request).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update request: %w", err)
		}
	}

	s.db.Preload("User").Preload("Supports").Preload("Supports.User").First(&request, requestID)

	return &request, nil
}

// DeleteRequest removes a request and its support rows.
func (s *RequestService) DeleteRequest(requestID uuid.UUID) error {
	var request models.ProductRequest
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("request: %w", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("request_id = ?", requestID).
			Delete(&models.RequestSupport{}).Error; err != nil {
			return fmt.Errorf("failed to delete supports: %w", err)
		}
		if err := tx.Unscoped().Delete(&request).Error; err != nil {
			return fmt.Errorf("failed to delete request: %w", err)
		}
		return nil
	})
}
