package repositories

import "KidAsk/models"

// FlaggedRepository persists questions held for parent review.
type FlaggedRepository interface {
	Create(question models.FlaggedQuestion) (string, error)
	Get(id string) (models.FlaggedQuestion, bool, error)
	Update(question models.FlaggedQuestion) error
	// ListByChild returns flagged questions newest first.
	ListByChild(childID string) ([]models.FlaggedQuestion, error)
	DeleteAll(childID string) (int, error)
}
