// internal/services/testutil_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foodnetwork/cfn-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductMovement{},
		&models.Order{},
		&models.ProductRequest{},
		&models.RequestSupport{},
		&models.News{},
		&models.AuditLog{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Name:  "Test User",
		Email: fmt.Sprintf("user-%s@example.com", uuid.New().String()[:8]),
		Role:  role,
	}
	require.NoError(t, user.SetPassword("TestPass123!"))
	require.NoError(t, db.Create(user).Error)

	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, stock int, price float64) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:         name,
		Category:     "grains",
		UnitPrice:    price,
		CurrentStock: stock,
		UnitsPerCase: 1,
		TotalUnits:   stock,
	}
	require.NoError(t, db.Create(product).Error)

	return product
}
