package controllers

import (
	"KidAsk/models"
	"KidAsk/services"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockModerationService implements ModerationServiceInterface for tests.
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) Moderate(flaggedID, action, childID string, childAge int) error {
	args := m.Called(flaggedID, action, childID, childAge)
	return args.Error(0)
}

func newModerationRouter(questionService *MockQuestionService, moderationService *MockModerationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetQuestionService(questionService)
	SetModerationService(moderationService)

	r := gin.New()
	r.GET("/flagged/:child_id", GetFlagged)
	r.POST("/filters/:child_id", UpdateFilters)
	r.POST("/moderate/:flagged_id", ModerateQuestion)
	return r
}

func moderateRequest(t *testing.T, router *gin.Engine, flaggedID, action string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(gin.H{"action": action, "childId": "child-1", "childAge": 6})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/moderate/"+flaggedID, bytes.NewBuffer(body))
	router.ServeHTTP(w, req)
	return w
}

func TestGetFlaggedEndpoint(t *testing.T) {
	questionService := new(MockQuestionService)
	router := newModerationRouter(questionService, new(MockModerationService))

	questionService.On("Flagged", "child-1").Return([]models.FlaggedQuestion{
		{ID: "flagged:child-1:1", Question: "Co to jest wojna?", Status: models.FlaggedStatusPending},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/flagged/child-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Flagged []models.FlaggedQuestion `json:"flagged"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Flagged, 1)
	assert.Equal(t, "flagged:child-1:1", resp.Flagged[0].ID)
}

func TestUpdateFiltersEndpoint(t *testing.T) {
	questionService := new(MockQuestionService)
	router := newModerationRouter(questionService, new(MockModerationService))

	expected := models.FilterSettings{
		CustomKeywords: models.ContentFilters{models.CategoryCustom: {"gry"}},
	}
	questionService.On("UpdateFilters", "child-1", expected).Return(nil)

	body, _ := json.Marshal(gin.H{"customKeywords": gin.H{"custom": []string{"gry"}}})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/filters/child-1", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	questionService.AssertExpectations(t)
}

func TestModerateEndpointStatusMapping(t *testing.T) {
	moderationService := new(MockModerationService)
	router := newModerationRouter(new(MockQuestionService), moderationService)

	moderationService.On("Moderate", "flagged:child-1:1", "approve", "child-1", 6).Return(nil)
	moderationService.On("Moderate", "flagged:child-1:2", "approve", "child-1", 6).Return(services.ErrFlaggedNotFound)
	moderationService.On("Moderate", "flagged:child-1:3", "approve", "child-1", 6).Return(services.ErrAlreadyModerated)
	moderationService.On("Moderate", "flagged:child-1:4", "escalate", "child-1", 6).Return(services.ErrInvalidAction)

	assert.Equal(t, http.StatusOK, moderateRequest(t, router, "flagged:child-1:1", "approve").Code)
	assert.Equal(t, http.StatusNotFound, moderateRequest(t, router, "flagged:child-1:2", "approve").Code)
	assert.Equal(t, http.StatusConflict, moderateRequest(t, router, "flagged:child-1:3", "approve").Code)
	assert.Equal(t, http.StatusBadRequest, moderateRequest(t, router, "flagged:child-1:4", "escalate").Code)
}
