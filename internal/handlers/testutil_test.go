// internal/handlers/testutil_test.go
package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foodnetwork/cfn-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	))

	return db
}

func newMember(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		Name:  "Test Member",
		Email: fmt.Sprintf("member-%s@example.com", uuid.New().String()[:8]),
		Role:  models.UserRoleMember,
	}
	require.NoError(t, user.SetPassword("TestPass123!"))
	require.NoError(t, db.Create(user).Error)

	return user
}

// asUser stands in for AuthRequired, injecting an already-verified session.
func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", user.ID.String())
		c.Set("user_name", user.Name)
		c.Set("user_role", string(user.Role))
		c.Next()
	}
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
