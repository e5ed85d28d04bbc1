// internal/services/payment_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/config"
	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

// PaymentService collects payment for confirmed orders through Stripe.
// Orders stay confirmed regardless of payment state; the co-op settles
// unpaid balances at pickup.
type PaymentService struct {
	db     *gorm.DB
	config *config.Config
}

type CreatePaymentIntentRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
}

type PaymentIntentResponse struct {
	ClientSecret string  `json:"client_secret"`
	PaymentID    string  `json:"payment_id"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

func NewPaymentService(db *gorm.DB, config *config.Config) *PaymentService {
	// Initialize Stripe
	stripe.Key = config.Payment.StripeSecretKey

	return &PaymentService{
		db:     db,
		config: config,
	}
}

// CreatePaymentIntent opens a Stripe PaymentIntent for the caller's own
// order, amount taken from the order's snapshotted total.
func (s *PaymentService) CreatePaymentIntent(userID uuid.UUID, req *CreatePaymentIntentRequest) (*PaymentIntentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order models.Order
	if err := s.db.First(&order, req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.UserID != userID {
		return nil, fmt.Errorf("order: %w", ErrNotFound)
	}

	// Convert amount to cents for Stripe
	amountInCents := int64(order.TotalPrice * 100)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents),
		Currency: stripe.String(s.config.Payment.Currency),
	}
	params.AddMetadata("order_id", order.ID.String())
	params.AddMetadata("user_id", userID.String())

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		PaymentID:    intent.ID,
		Amount:       order.TotalPrice,
		Status:       string(intent.Status),
	}, nil
}

// ConfirmPayment checks the intent's state with Stripe after the client
// completed the payment flow.
func (s *PaymentService) ConfirmPayment(req *ConfirmPaymentRequest) (*PaymentIntentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	intent, err := paymentintent.Get(req.PaymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("payment not completed, status %s: %w", intent.Status, ErrForbidden)
	}

	return &PaymentIntentResponse{
		PaymentID: intent.ID,
		Amount:    float64(intent.Amount) / 100,
		Status:    string(intent.Status),
	}, nil
}
