package mocks

import (
	"KidAsk/models"

	"github.com/stretchr/testify/mock"
)

type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Append(record models.ConversationRecord) (string, error) {
	args := m.Called(record)
	return args.String(0), args.Error(1)
}

func (m *MockConversationRepository) Recent(childID string, limit int) ([]models.ConversationRecord, error) {
	args := m.Called(childID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ConversationRecord), args.Error(1)
}

func (m *MockConversationRepository) DeleteAll(childID string) (int, error) {
	args := m.Called(childID)
	return args.Int(0), args.Error(1)
}
