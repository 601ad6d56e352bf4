package controllers

import (
	"KidAsk/models"
	"KidAsk/services"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockQuestionService implements QuestionServiceInterface for tests.
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) ProcessQuestion(question, childID string, childAge int) (services.ProcessResult, error) {
	args := m.Called(question, childID, childAge)
	return args.Get(0).(services.ProcessResult), args.Error(1)
}

func (m *MockQuestionService) History(childID string) ([]models.ConversationRecord, error) {
	args := m.Called(childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ConversationRecord), args.Error(1)
}

func (m *MockQuestionService) Flagged(childID string) ([]models.FlaggedQuestion, error) {
	args := m.Called(childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlaggedQuestion), args.Error(1)
}

func (m *MockQuestionService) UpdateFilters(childID string, settings models.FilterSettings) error {
	args := m.Called(childID, settings)
	return args.Error(0)
}

func newQuestionRouter(service *MockQuestionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetQuestionService(service)

	r := gin.New()
	r.POST("/process-question", ProcessQuestion)
	r.GET("/history/:child_id", GetHistory)
	return r
}

func TestProcessQuestionEndpointReturnsAnswer(t *testing.T) {
	service := new(MockQuestionService)
	router := newQuestionRouter(service)

	service.On("ProcessQuestion", "Dlaczego niebo jest niebieskie?", "child-1", 5).
		Return(services.ProcessResult{
			Success:         true,
			Answer:          "Niebo jest niebieskie, bo...",
			VideoSuggestion: "Dlaczego niebo jest niebieskie - YouTube Kids",
			ConversationID:  "conversation:child-1:1",
		}, nil)

	body, _ := json.Marshal(gin.H{
		"question": "Dlaczego niebo jest niebieskie?",
		"childId":  "child-1",
		"childAge": 5,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/process-question", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Niebo jest niebieskie, bo...", resp["answer"])
	assert.Equal(t, "conversation:child-1:1", resp["conversationId"])
}

func TestProcessQuestionEndpointReturnsFlaggedNotice(t *testing.T) {
	service := new(MockQuestionService)
	router := newQuestionRouter(service)

	service.On("ProcessQuestion", "Co to jest wojna?", "child-1", 5).
		Return(services.ProcessResult{
			Flagged: true,
			Reason:  "Filtr: przemoc",
			Message: "Pytanie zostało wysłane do rodzica do sprawdzenia.",
		}, nil)

	body, _ := json.Marshal(gin.H{
		"question": "Co to jest wojna?",
		"childId":  "child-1",
		"childAge": 5,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/process-question", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["flagged"])
	assert.Equal(t, "Filtr: przemoc", resp["reason"])
	assert.NotContains(t, resp, "answer")
}

func TestProcessQuestionEndpointRequiresFields(t *testing.T) {
	service := new(MockQuestionService)
	router := newQuestionRouter(service)

	body, _ := json.Marshal(gin.H{"childAge": 5})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/process-question", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])
	service.AssertNotCalled(t, "ProcessQuestion", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetHistoryEndpointHidesStoreErrorDetail(t *testing.T) {
	service := new(MockQuestionService)
	router := newQuestionRouter(service)

	service.On("History", "child-1").
		Return(nil, errors.New(`pq: password authentication failed for user "kidask"`))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/history/child-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp["error"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestProcessQuestionEndpointHidesStoreErrorDetail(t *testing.T) {
	service := new(MockQuestionService)
	router := newQuestionRouter(service)

	service.On("ProcessQuestion", "Dlaczego niebo jest niebieskie?", "child-1", 5).
		Return(services.ProcessResult{}, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	body, _ := json.Marshal(gin.H{
		"question": "Dlaczego niebo jest niebieskie?",
		"childId":  "child-1",
		"childAge": 5,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/process-question", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp["error"])
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestGetHistoryEndpoint(t *testing.T) {
	service := new(MockQuestionService)
	router := newQuestionRouter(service)

	service.On("History", "child-1").Return([]models.ConversationRecord{
		{Question: "q", Answer: "a", ChildID: "child-1", Approved: true},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/history/child-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Conversations []models.ConversationRecord `json:"conversations"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Conversations, 1)
	assert.Equal(t, "q", resp.Conversations[0].Question)
}
