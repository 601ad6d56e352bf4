package impl

import (
	"KidAsk/models"
	"KidAsk/repositories"

	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) repositories.ProfileRepository {
	return &ProfileRepositoryImpl{DB: db}
}

func (r *ProfileRepositoryImpl) FindByChildID(childID string) (models.ChildProfile, error) {
	var profile models.ChildProfile
	if err := r.DB.Where("child_id = ?", childID).First(&profile).Error; err != nil {
		return models.ChildProfile{}, err
	}
	return profile, nil
}

func (r *ProfileRepositoryImpl) ListByGuardian(guardianID uint) ([]models.ChildProfile, error) {
	var profiles []models.ChildProfile
	if err := r.DB.Where("guardian_id = ?", guardianID).Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepositoryImpl) Save(profile models.ChildProfile) error {
	return r.DB.Save(&profile).Error
}
