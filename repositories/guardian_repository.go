package repositories

import "KidAsk/models"

type GuardianRepository interface {
	FindByEmail(email string) (models.Guardian, error)
	FindByID(id uint) (models.Guardian, error)
	Save(guardian models.Guardian) error
}
