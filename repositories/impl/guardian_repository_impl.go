package impl

import (
	"KidAsk/models"
	"KidAsk/repositories"

	"gorm.io/gorm"
)

type GuardianRepositoryImpl struct {
	DB *gorm.DB
}

func NewGuardianRepository(db *gorm.DB) repositories.GuardianRepository {
	return &GuardianRepositoryImpl{DB: db}
}

func (r *GuardianRepositoryImpl) FindByEmail(email string) (models.Guardian, error) {
	var guardian models.Guardian
	if err := r.DB.Where("email = ?", email).First(&guardian).Error; err != nil {
		return models.Guardian{}, err
	}
	return guardian, nil
}

func (r *GuardianRepositoryImpl) FindByID(id uint) (models.Guardian, error) {
	var guardian models.Guardian
	if err := r.DB.First(&guardian, id).Error; err != nil {
		return models.Guardian{}, err
	}
	return guardian, nil
}

func (r *GuardianRepositoryImpl) Save(guardian models.Guardian) error {
	return r.DB.Save(&guardian).Error
}
