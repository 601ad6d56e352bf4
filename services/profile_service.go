package services

import (
	"KidAsk/models"
	"KidAsk/repositories"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

type ProfileService struct {
	ProfileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{ProfileRepo: profileRepo}
}

func (s *ProfileService) CreateProfile(guardianID uint, profile models.ChildProfile) (models.ChildProfile, error) {
	if profile.Name == "" {
		return models.ChildProfile{}, errors.New("name cannot be empty")
	}
	currentYear := time.Now().Year()
	if profile.BirthYear < currentYear-17 || profile.BirthYear > currentYear {
		return models.ChildProfile{}, errors.New("birth year out of range")
	}

	// Generate a unique child identifier unless the caller brought one.
	if profile.ChildID == "" {
		for {
			candidate := fmt.Sprintf("%06d", 100000+rand.Intn(900000))
			if _, err := s.ProfileRepo.FindByChildID(candidate); err != nil {
				profile.ChildID = candidate
				break
			}
		}
	} else if _, err := s.ProfileRepo.FindByChildID(profile.ChildID); err == nil {
		return models.ChildProfile{}, errors.New("child id already in use")
	}

	profile.GuardianID = guardianID
	if err := s.ProfileRepo.Save(profile); err != nil {
		return models.ChildProfile{}, err
	}

	return s.ProfileRepo.FindByChildID(profile.ChildID)
}

func (s *ProfileService) ListProfiles(guardianID uint) ([]models.ChildProfile, error) {
	return s.ProfileRepo.ListByGuardian(guardianID)
}

func (s *ProfileService) GetProfile(childID string) (models.ChildProfile, error) {
	return s.ProfileRepo.FindByChildID(childID)
}
