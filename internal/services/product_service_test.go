// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

type ProductServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ProductService
	admin   *models.User
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewProductService(suite.db)
	suite.admin = createTestUser(suite.T(), suite.db, models.UserRoleAdmin)
}

func (suite *ProductServiceTestSuite) TestCreateProductRecordsInitialStock() {
	product, err := suite.service.CreateProduct(suite.admin.ID, &CreateProductRequest{
		Name:         "Basmati Rice",
		Category:     "Grains",
		UnitPrice:    4.50,
		CurrentStock: 40,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "grains", product.Category)
	assert.Equal(suite.T(), 40, product.TotalUnits)
	assert.Equal(suite.T(), 1, product.UnitsPerCase)

	var movement models.ProductMovement
	suite.db.Where("product_id = ?", product.ID).First(&movement)
	assert.Equal(suite.T(), models.MovementTypeStockAdded, movement.MovementType)
	assert.Equal(suite.T(), 40, movement.Quantity)
	assert.Equal(suite.T(), "Initial stock", movement.Notes)
}

func (suite *ProductServiceTestSuite) TestCreateProductWithZeroStockHasNoMovement() {
	product, err := suite.service.CreateProduct(suite.admin.ID, &CreateProductRequest{
		Name:      "Seasonal Jam",
		Category:  "preserves",
		UnitPrice: 5.00,
	})
	assert.NoError(suite.T(), err)

	var movementCount int64
	suite.db.Model(&models.ProductMovement{}).Where("product_id = ?", product.ID).Count(&movementCount)
	assert.Zero(suite.T(), movementCount)
}

func (suite *ProductServiceTestSuite) TestUpdateProductStockEditLeavesMovement() {
	product := createTestProduct(suite.T(), suite.db, "Black Beans", 30, 2.10)

	newStock := 22
	updated, err := suite.service.UpdateProduct(suite.admin.ID, product.ID, &UpdateProductRequest{
		CurrentStock: &newStock,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 22, updated.CurrentStock)

	var movement models.ProductMovement
	suite.db.Where("product_id = ?", product.ID).First(&movement)
	assert.Equal(suite.T(), models.MovementTypeStockRemoved, movement.MovementType)
	assert.Equal(suite.T(), 8, movement.Quantity)
	assert.Equal(suite.T(), "Stock updated via product edit", movement.Notes)
}

func (suite *ProductServiceTestSuite) TestUpdateProductPartialFields() {
	product := createTestProduct(suite.T(), suite.db, "Walnuts", 15, 7.80)

	newPrice := 8.20
	updated, err := suite.service.UpdateProduct(suite.admin.ID, product.ID, &UpdateProductRequest{
		UnitPrice: &newPrice,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 8.20, updated.UnitPrice)
	assert.Equal(suite.T(), "Walnuts", updated.Name)
	assert.Equal(suite.T(), 15, updated.CurrentStock)

	// Price-only edits leave no stock movement behind.
	var movementCount int64
	suite.db.Model(&models.ProductMovement{}).Where("product_id = ?", product.ID).Count(&movementCount)
	assert.Zero(suite.T(), movementCount)
}

func (suite *ProductServiceTestSuite) TestDeleteProductRefusedWhenOrdersExist() {
	product := createTestProduct(suite.T(), suite.db, "Couscous", 10, 3.30)
	member := createTestUser(suite.T(), suite.db, models.UserRoleMember)

	orderService := NewOrderService(suite.db)
	_, err := orderService.PlaceOrder(member.ID, &PlaceOrderRequest{ProductID: product.ID, Quantity: 1})
	suite.Require().NoError(err)

	assert.ErrorIs(suite.T(), suite.service.DeleteProduct(product.ID), ErrHasOrders)

	var count int64
	suite.db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(suite.T(), 1, count)
}

func (suite *ProductServiceTestSuite) TestDeleteProductWithoutOrders() {
	product := createTestProduct(suite.T(), suite.db, "Dried Figs", 10, 4.90)

	assert.NoError(suite.T(), suite.service.DeleteProduct(product.ID))
	assert.ErrorIs(suite.T(), suite.service.DeleteProduct(product.ID), ErrNotFound)
}

func (suite *ProductServiceTestSuite) TestListProductsFiltersByCategory() {
	createTestProduct(suite.T(), suite.db, "Rice", 10, 3.00)
	spice := &models.Product{Name: "Cumin", Category: "spices", UnitPrice: 2.00, CurrentStock: 5}
	suite.Require().NoError(suite.db.Create(spice).Error)

	products, total, err := suite.service.ListProducts(utils.PaginationParams{
		Page: 1, Limit: 20, Category: "Spices",
	})
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 1, total)
	suite.Require().Len(products, 1)
	assert.Equal(suite.T(), "Cumin", products[0].Name)
}

func (suite *ProductServiceTestSuite) TestListProductsSearch() {
	createTestProduct(suite.T(), suite.db, "Wild Rice", 10, 5.00)
	createTestProduct(suite.T(), suite.db, "Almonds", 10, 6.00)

	products, total, err := suite.service.ListProducts(utils.PaginationParams{
		Page: 1, Limit: 20, Search: "rice",
	})
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 1, total)
	suite.Require().Len(products, 1)
	assert.Equal(suite.T(), "Wild Rice", products[0].Name)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
