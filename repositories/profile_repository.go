package repositories

import "KidAsk/models"

type ProfileRepository interface {
	FindByChildID(childID string) (models.ChildProfile, error)
	ListByGuardian(guardianID uint) ([]models.ChildProfile, error)
	Save(profile models.ChildProfile) error
}
