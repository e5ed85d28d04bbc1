// internal/services/admin_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/models"
)

type AdminServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AdminService
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewAdminService(suite.db)
}

func (suite *AdminServiceTestSuite) TestDashboardStatsEmptyDatabase() {
	stats, err := suite.service.GetDashboardStats()
	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), stats.TotalMembers)
	assert.Zero(suite.T(), stats.TotalOrders)
	assert.Zero(suite.T(), stats.TotalRevenue)
}

func (suite *AdminServiceTestSuite) TestDashboardStatsCountsActivity() {
	admin := createTestUser(suite.T(), suite.db, models.UserRoleAdmin)
	member := createTestUser(suite.T(), suite.db, models.UserRoleMember)
	_ = admin

	product := createTestProduct(suite.T(), suite.db, "Rye Flour", 40, 2.50)
	lowStock := createTestProduct(suite.T(), suite.db, "Saffron", 2, 15.00)
	_ = lowStock

	orderService := NewOrderService(suite.db)
	_, err := orderService.PlaceOrder(member.ID, &PlaceOrderRequest{ProductID: product.ID, Quantity: 4})
	suite.Require().NoError(err)

	requestService := NewRequestService(suite.db)
	_, err = requestService.CreateRequest(member.ID, &CreateRequestRequest{
		ProductName:  "Buckwheat",
		AmountWanted: 3,
	})
	suite.Require().NoError(err)

	stats, err := suite.service.GetDashboardStats()
	assert.NoError(suite.T(), err)

	// Admins are not counted as members.
	assert.EqualValues(suite.T(), 1, stats.TotalMembers)
	assert.EqualValues(suite.T(), 1, stats.NewMembersThisMonth)
	assert.EqualValues(suite.T(), 2, stats.TotalProducts)
	assert.EqualValues(suite.T(), 1, stats.LowStockProducts)
	assert.EqualValues(suite.T(), 1, stats.TotalOrders)
	assert.EqualValues(suite.T(), 1, stats.OrdersThisMonth)
	assert.InDelta(suite.T(), 10.0, stats.TotalRevenue, 0.001)
	assert.EqualValues(suite.T(), 1, stats.TotalRequests)
	assert.EqualValues(suite.T(), 1, stats.PendingRequests)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
