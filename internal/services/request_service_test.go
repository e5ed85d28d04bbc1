// internal/services/request_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/models"
)

type RequestServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *RequestService
	member  *models.User
}

func (suite *RequestServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewRequestService(suite.db)
	suite.member = createTestUser(suite.T(), suite.db, models.UserRoleMember)
}

func (suite *RequestServiceTestSuite) createRequest(amountWanted float64) *models.ProductRequest {
	request, err := suite.service.CreateRequest(suite.member.ID, &CreateRequestRequest{
		ProductName:  "Organic Tahini",
		Description:  "Good for hummus nights",
		AmountWanted: amountWanted,
	})
	suite.Require().NoError(err)
	return request
}

func (suite *RequestServiceTestSuite) TestCreateRequestStartsPendingWithoutGoal() {
	request := suite.createRequest(2)

	assert.Equal(suite.T(), models.RequestStatusPending, request.Status)
	assert.Nil(suite.T(), request.Goal)
	assert.Equal(suite.T(), suite.member.ID, request.UserID)
}

func (suite *RequestServiceTestSuite) TestSupportRequestTwiceConflicts() {
	request := suite.createRequest(2)
	supporter := createTestUser(suite.T(), suite.db, models.UserRoleMember)

	_, err := suite.service.SupportRequest(supporter.ID, request.ID)
	assert.NoError(suite.T(), err)

	_, err = suite.service.SupportRequest(supporter.ID, request.ID)
	assert.ErrorIs(suite.T(), err, ErrAlreadySupported)

	var supportCount int64
	suite.db.Model(&models.RequestSupport{}).Where("request_id = ?", request.ID).Count(&supportCount)
	assert.EqualValues(suite.T(), 1, supportCount)
}

func (suite *RequestServiceTestSuite) TestSupportUnknownRequest() {
	_, err := suite.service.SupportRequest(suite.member.ID, suite.member.ID)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *RequestServiceTestSuite) TestRemoveSupportIsIdempotent() {
	request := suite.createRequest(2)
	supporter := createTestUser(suite.T(), suite.db, models.UserRoleMember)

	_, err := suite.service.SupportRequest(supporter.ID, request.ID)
	assert.NoError(suite.T(), err)

	assert.NoError(suite.T(), suite.service.RemoveSupport(supporter.ID, request.ID))
	// Removing again is not an error.
	assert.NoError(suite.T(), suite.service.RemoveSupport(supporter.ID, request.ID))

	var supportCount int64
	suite.db.Model(&models.RequestSupport{}).Where("request_id = ?", request.ID).Count(&supportCount)
	assert.Zero(suite.T(), supportCount)
}

func (suite *RequestServiceTestSuite) TestListRequestsComputesProgress() {
	request := suite.createRequest(2)

	goal := 10
	_, err := suite.service.UpdateRequest(request.ID, &UpdateRequestRequest{Goal: &goal})
	suite.Require().NoError(err)

	for i := 0; i < 3; i++ {
		supporter := createTestUser(suite.T(), suite.db, models.UserRoleMember)
		_, err := suite.service.SupportRequest(supporter.ID, request.ID)
		suite.Require().NoError(err)
	}

	requests, err := suite.service.ListRequestsWithProgress()
	assert.NoError(suite.T(), err)
	suite.Require().Len(requests, 1)

	// Requester's 2 plus 3 supporters at 2 each.
	assert.InDelta(suite.T(), 8.0, requests[0].TotalRequested, 0.001)
	assert.InDelta(suite.T(), 80.0, requests[0].ProgressPercentage, 0.001)
	assert.InDelta(suite.T(), 2.0, requests[0].RemainingNeeded, 0.001)

	// Reading progress must not change it.
	again, err := suite.service.ListRequestsWithProgress()
	assert.NoError(suite.T(), err)
	suite.Require().Len(again, 1)
	assert.InDelta(suite.T(), requests[0].TotalRequested, again[0].TotalRequested, 0.001)
	assert.InDelta(suite.T(), requests[0].ProgressPercentage, again[0].ProgressPercentage, 0.001)
	assert.Len(suite.T(), again[0].Supports, 3)
}

func (suite *RequestServiceTestSuite) TestProgressWithoutGoalIsZero() {
	suite.createRequest(5)

	requests, err := suite.service.ListRequestsWithProgress()
	assert.NoError(suite.T(), err)
	suite.Require().Len(requests, 1)

	assert.Zero(suite.T(), requests[0].ProgressPercentage)
	assert.Zero(suite.T(), requests[0].RemainingNeeded)
}

func (suite *RequestServiceTestSuite) TestProgressIsCappedAtHundred() {
	request := suite.createRequest(4)

	goal := 5
	_, err := suite.service.UpdateRequest(request.ID, &UpdateRequestRequest{Goal: &goal})
	suite.Require().NoError(err)

	supporter := createTestUser(suite.T(), suite.db, models.UserRoleMember)
	_, err = suite.service.SupportRequest(supporter.ID, request.ID)
	suite.Require().NoError(err)

	requests, err := suite.service.ListRequestsWithProgress()
	assert.NoError(suite.T(), err)
	suite.Require().Len(requests, 1)

	assert.InDelta(suite.T(), 100.0, requests[0].ProgressPercentage, 0.001)
	assert.Zero(suite.T(), requests[0].RemainingNeeded)
}

func (suite *RequestServiceTestSuite) TestUpdateRequestStatusOnly() {
	request := suite.createRequest(2)

	status := models.RequestStatusApproved
	updated, err := suite.service.UpdateRequest(request.ID, &UpdateRequestRequest{Status: &status})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusApproved, updated.Status)
	assert.Nil(suite.T(), updated.Goal)
}

func (suite *RequestServiceTestSuite) TestUpdateRequestRejectsUnknownStatus() {
	request := suite.createRequest(2)

	status := models.RequestStatus("archived")
	_, err := suite.service.UpdateRequest(request.ID, &UpdateRequestRequest{Status: &status})
	assert.Error(suite.T(), err)
}

func (suite *RequestServiceTestSuite) TestSettingGoalDoesNotChangeStatus() {
	request := suite.createRequest(2)

	goal := 20
	updated, err := suite.service.UpdateRequest(request.ID, &UpdateRequestRequest{Goal: &goal})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusPending, updated.Status)
	suite.Require().NotNil(updated.Goal)
	assert.Equal(suite.T(), 20, *updated.Goal)
}

func (suite *RequestServiceTestSuite) TestDeleteRequestRemovesSupports() {
	request := suite.createRequest(2)
	supporter := createTestUser(suite.T(), suite.db, models.UserRoleMember)
	_, err := suite.service.SupportRequest(supporter.ID, request.ID)
	suite.Require().NoError(err)

	assert.NoError(suite.T(), suite.service.DeleteRequest(request.ID))

	var requestCount, supportCount int64
	suite.db.Model(&models.ProductRequest{}).Count(&requestCount)
	suite.db.Model(&models.RequestSupport{}).Count(&supportCount)
	assert.Zero(suite.T(), requestCount)
	assert.Zero(suite.T(), supportCount)
}

func TestRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RequestServiceTestSuite))
}
