package mocks

import (
	"KidAsk/models"

	"github.com/stretchr/testify/mock"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByChildID(childID string) (models.ChildProfile, error) {
	args := m.Called(childID)
	return args.Get(0).(models.ChildProfile), args.Error(1)
}

func (m *MockProfileRepository) ListByGuardian(guardianID uint) ([]models.ChildProfile, error) {
	args := m.Called(guardianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChildProfile), args.Error(1)
}

func (m *MockProfileRepository) Save(profile models.ChildProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}
