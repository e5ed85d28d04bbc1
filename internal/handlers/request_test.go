// internal/handlers/request_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/services"
)

func TestSupportRequestDuplicateIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	requester := newMember(t, db)
	supporter := newMember(t, db)

	requestService := services.NewRequestService(db)
	request, err := requestService.CreateRequest(requester.ID, &services.CreateRequestRequest{
		ProductName: "Rolled Oats",
		Description: "25 lb bags",
	})
	require.NoError(t, err)

	h := NewRequestHandler(requestService)
	r := gin.New()
	r.POST("/requests/:id/support", asUser(supporter), h.SupportRequest)

	path := "/requests/" + request.ID.String() + "/support"

	w := postJSON(t, r, path, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, path, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.RequestSupport{}).Where("request_id = ?", request.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}
