package mocks

import (
	"KidAsk/models"

	"github.com/stretchr/testify/mock"
)

type MockFlaggedRepository struct {
	mock.Mock
}

func (m *MockFlaggedRepository) Create(question models.FlaggedQuestion) (string, error) {
	args := m.Called(question)
	return args.String(0), args.Error(1)
}

func (m *MockFlaggedRepository) Get(id string) (models.FlaggedQuestion, bool, error) {
	args := m.Called(id)
	return args.Get(0).(models.FlaggedQuestion), args.Bool(1), args.Error(2)
}

func (m *MockFlaggedRepository) Update(question models.FlaggedQuestion) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockFlaggedRepository) ListByChild(childID string) ([]models.FlaggedQuestion, error) {
	args := m.Called(childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlaggedQuestion), args.Error(1)
}

func (m *MockFlaggedRepository) DeleteAll(childID string) (int, error) {
	args := m.Called(childID)
	return args.Int(0), args.Error(1)
}
