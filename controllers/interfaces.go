package controllers

import (
	"KidAsk/models"
	"KidAsk/services"
)

// QuestionServiceInterface covers the child-facing question pipeline.
type QuestionServiceInterface interface {
	ProcessQuestion(question, childID string, childAge int) (services.ProcessResult, error)
	History(childID string) ([]models.ConversationRecord, error)
	Flagged(childID string) ([]models.FlaggedQuestion, error)
	UpdateFilters(childID string, settings models.FilterSettings) error
}

type ModerationServiceInterface interface {
	Moderate(flaggedID, action, childID string, childAge int) error
}

type ComplianceServiceInterface interface {
	Export(childID string) (services.ExportSnapshot, error)
	EraseAll(childID string) (int, error)
}

type AuthServiceInterface interface {
	RegisterGuardian(name, email, password, lang string) (models.Guardian, string, error)
	LoginGuardian(email, password string) (models.Guardian, string, error)
	UpdateDeviceToken(guardianID uint, deviceToken string) error
}

type ProfileServiceInterface interface {
	CreateProfile(guardianID uint, profile models.ChildProfile) (models.ChildProfile, error)
	ListProfiles(guardianID uint) ([]models.ChildProfile, error)
	GetProfile(childID string) (models.ChildProfile, error)
}
