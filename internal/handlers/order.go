// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/foodnetwork/cfn-backend/internal/i18n"
	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/services"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.PlaceOrder(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		if errors.Is(err, services.ErrInsufficientStock) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductOutOfStock), nil)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderPlaced),
		"order":   order,
	})
}

// GET /orders
//
// Members see their own orders; admins see everyone's.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	role, _ := utils.GetUserRoleFromContext(c)
	isAdmin := role == string(models.UserRoleAdmin)

	params := utils.GetPaginationParams(c)
	orders, total, err := h.orderService.ListOrders(userID, isAdmin, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	role, _ := utils.GetUserRoleFromContext(c)
	isAdmin := role == string(models.UserRoleAdmin)

	order, err := h.orderService.GetOrder(orderID, userID, isAdmin)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "order")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"order": order})
}
