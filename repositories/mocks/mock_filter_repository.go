package mocks

import (
	"KidAsk/models"

	"github.com/stretchr/testify/mock"
)

type MockFilterRepository struct {
	mock.Mock
}

func (m *MockFilterRepository) Get(childID string) (models.FilterSettings, bool, error) {
	args := m.Called(childID)
	return args.Get(0).(models.FilterSettings), args.Bool(1), args.Error(2)
}

func (m *MockFilterRepository) Save(childID string, settings models.FilterSettings) error {
	args := m.Called(childID, settings)
	return args.Error(0)
}

func (m *MockFilterRepository) Delete(childID string) (bool, error) {
	args := m.Called(childID)
	return args.Bool(0), args.Error(1)
}
