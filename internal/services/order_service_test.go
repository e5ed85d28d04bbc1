// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *OrderService
	member  *models.User
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewOrderService(suite.db)
	suite.member = createTestUser(suite.T(), suite.db, models.UserRoleMember)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderDecrementsStock() {
	product := createTestProduct(suite.T(), suite.db, "Brown Rice", 50, 3.20)

	order, err := suite.service.PlaceOrder(suite.member.ID, &PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  10,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 10, order.Quantity)
	assert.Equal(suite.T(), 3.20, order.UnitPrice)
	assert.InDelta(suite.T(), 32.0, order.TotalPrice, 0.001)
	assert.Equal(suite.T(), models.OrderStatusConfirmed, order.Status)

	var updated models.Product
	suite.db.First(&updated, product.ID)
	assert.Equal(suite.T(), 40, updated.CurrentStock)
	assert.Equal(suite.T(), 10, updated.SoldUnits)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderRecordsPurchaseMovement() {
	product := createTestProduct(suite.T(), suite.db, "Lentils", 20, 2.50)

	_, err := suite.service.PlaceOrder(suite.member.ID, &PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  5,
	})
	assert.NoError(suite.T(), err)

	var movements []models.ProductMovement
	suite.db.Where("product_id = ?", product.ID).Find(&movements)
	assert.Len(suite.T(), movements, 1)
	assert.Equal(suite.T(), models.MovementTypePurchase, movements[0].MovementType)
	assert.Equal(suite.T(), 5, movements[0].Quantity)
	assert.Equal(suite.T(), suite.member.ID, movements[0].UserID)
	assert.Equal(suite.T(), "Order purchase - 5 units", movements[0].Notes)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderInsufficientStockLeavesNoTrace() {
	product := createTestProduct(suite.T(), suite.db, "Oats", 3, 1.80)

	_, err := suite.service.PlaceOrder(suite.member.ID, &PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  4,
	})
	assert.ErrorIs(suite.T(), err, ErrInsufficientStock)

	var updated models.Product
	suite.db.First(&updated, product.ID)
	assert.Equal(suite.T(), 3, updated.CurrentStock)

	var orderCount, movementCount int64
	suite.db.Model(&models.Order{}).Count(&orderCount)
	suite.db.Model(&models.ProductMovement{}).Count(&movementCount)
	assert.Zero(suite.T(), orderCount)
	assert.Zero(suite.T(), movementCount)
}

func (suite *OrderServiceTestSuite) TestCompetingOrdersOnlyOneWins() {
	// Two orders of 30 against a stock of 50: the first commits,
	// the second fails, and stock never goes negative.
	product := createTestProduct(suite.T(), suite.db, "Flour", 50, 2.00)
	other := createTestUser(suite.T(), suite.db, models.UserRoleMember)

	_, err1 := suite.service.PlaceOrder(suite.member.ID, &PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  30,
	})
	_, err2 := suite.service.PlaceOrder(other.ID, &PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  30,
	})

	assert.NoError(suite.T(), err1)
	assert.ErrorIs(suite.T(), err2, ErrInsufficientStock)

	var updated models.Product
	suite.db.First(&updated, product.ID)
	assert.Equal(suite.T(), 20, updated.CurrentStock)

	var orderCount int64
	suite.db.Model(&models.Order{}).Count(&orderCount)
	assert.EqualValues(suite.T(), 1, orderCount)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderUnknownProduct() {
	_, err := suite.service.PlaceOrder(suite.member.ID, &PlaceOrderRequest{
		ProductID: suite.member.ID, // not a product id
		Quantity:  1,
	})
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderRejectsNonPositiveQuantity() {
	product := createTestProduct(suite.T(), suite.db, "Quinoa", 10, 6.00)

	_, err := suite.service.PlaceOrder(suite.member.ID, &PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  0,
	})
	assert.Error(suite.T(), err)

	_, err = suite.service.PlaceOrder(suite.member.ID, &PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  -2,
	})
	assert.Error(suite.T(), err)
}

func (suite *OrderServiceTestSuite) TestListOrdersScopedToMember() {
	product := createTestProduct(suite.T(), suite.db, "Chickpeas", 100, 2.40)
	other := createTestUser(suite.T(), suite.db, models.UserRoleMember)

	_, err := suite.service.PlaceOrder(suite.member.ID, &PlaceOrderRequest{ProductID: product.ID, Quantity: 1})
	assert.NoError(suite.T(), err)
	_, err = suite.service.PlaceOrder(other.ID, &PlaceOrderRequest{ProductID: product.ID, Quantity: 2})
	assert.NoError(suite.T(), err)

	params := utils.PaginationParams{Page: 1, Limit: 20}

	own, total, err := suite.service.ListOrders(suite.member.ID, false, params)
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 1, total)
	assert.Len(suite.T(), own, 1)
	assert.Equal(suite.T(), suite.member.ID, own[0].UserID)

	all, total, err := suite.service.ListOrders(suite.member.ID, true, params)
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 2, total)
	assert.Len(suite.T(), all, 2)
}

func (suite *OrderServiceTestSuite) TestGetOrderHidesOtherMembersOrders() {
	product := createTestProduct(suite.T(), suite.db, "Pasta", 10, 1.50)
	other := createTestUser(suite.T(), suite.db, models.UserRoleMember)

	order, err := suite.service.PlaceOrder(other.ID, &PlaceOrderRequest{ProductID: product.ID, Quantity: 1})
	assert.NoError(suite.T(), err)

	_, err = suite.service.GetOrder(order.ID, suite.member.ID, false)
	assert.ErrorIs(suite.T(), err, ErrNotFound)

	got, err := suite.service.GetOrder(order.ID, suite.member.ID, true)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), order.ID, got.ID)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
