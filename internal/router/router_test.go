// internal/router/router_test.go
package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foodnetwork/cfn-backend/internal/config"
	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	cfg := &config.Config{
		JWT:  config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1, RefreshTokenTTL: 24},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return Initialize(db, cfg), db
}

var clientSeq atomic.Int64

// do issues the request from a fresh client IP so the per-IP rate limiter
// never interferes with routing assertions.
func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	n := clientSeq.Add(1)
	req.RemoteAddr = fmt.Sprintf("10.1.%d.%d:4000", n/250, n%250)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndPublicBrowse(t *testing.T) {
	r, _ := setupRouter(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/products", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/requests", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/news", "").Code)
}

// Admin mutations live on the resource paths and reject anyone without an
// admin session as Unauthorized.
func TestAdminMutationsAreGatedOnResourcePaths(t *testing.T) {
	r, _ := setupRouter(t)

	id := uuid.New().String()
	adminRoutes := []struct{ method, path string }{
		{http.MethodPost, "/v1/products"},
		{http.MethodPut, "/v1/products/" + id},
		{http.MethodDelete, "/v1/products/" + id},
		{http.MethodPost, "/v1/products/" + id + "/stock"},
		{http.MethodGet, "/v1/products/" + id + "/movements"},
		{http.MethodPatch, "/v1/requests/" + id},
		{http.MethodDelete, "/v1/requests/" + id},
		{http.MethodGet, "/v1/news/all"},
		{http.MethodPost, "/v1/news"},
		{http.MethodGet, "/v1/admin/dashboard/stats"},
	}

	for _, route := range adminRoutes {
		w := do(r, route.method, route.path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s anonymous", route.method, route.path)
	}

	memberToken, err := utils.GenerateJWT(uuid.New(), "Member", "member", 1)
	require.NoError(t, err)

	for _, route := range adminRoutes {
		w := do(r, route.method, route.path, memberToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s as member", route.method, route.path)
	}
}

func TestMemberRoutesRequireSession(t *testing.T) {
	r, _ := setupRouter(t)

	id := uuid.New().String()
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/v1/orders", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/v1/requests", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/v1/requests/"+id+"/support", "").Code)
}
