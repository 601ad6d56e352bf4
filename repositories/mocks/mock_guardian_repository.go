package mocks

import (
	"KidAsk/models"

	"github.com/stretchr/testify/mock"
)

type MockGuardianRepository struct {
	mock.Mock
}

func (m *MockGuardianRepository) FindByEmail(email string) (models.Guardian, error) {
	args := m.Called(email)
	return args.Get(0).(models.Guardian), args.Error(1)
}

func (m *MockGuardianRepository) FindByID(id uint) (models.Guardian, error) {
	args := m.Called(id)
	return args.Get(0).(models.Guardian), args.Error(1)
}

func (m *MockGuardianRepository) Save(guardian models.Guardian) error {
	args := m.Called(guardian)
	return args.Error(0)
}
