package services

import (
	"KidAsk/models"
	"KidAsk/repositories"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

func jwtKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("kidask_secret_key")
}

type AuthService struct {
	GuardianRepo repositories.GuardianRepository
}

func NewAuthService(guardianRepo repositories.GuardianRepository) *AuthService {
	return &AuthService{GuardianRepo: guardianRepo}
}

func (s *AuthService) RegisterGuardian(name, email, password, lang string) (models.Guardian, string, error) {
	if password == "" {
		return models.Guardian{}, "", errors.New("password cannot be empty")
	}
	if _, err := s.GuardianRepo.FindByEmail(email); err == nil {
		return models.Guardian{}, "", errors.New("email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Guardian{}, "", err
	}

	if lang == "" {
		lang = "pl"
	}

	guardian := models.Guardian{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Lang:     lang,
	}
	if err := s.GuardianRepo.Save(guardian); err != nil {
		return models.Guardian{}, "", err
	}

	// Re-read to pick up the generated ID for the token claims.
	guardian, err = s.GuardianRepo.FindByEmail(email)
	if err != nil {
		return models.Guardian{}, "", err
	}

	token, err := s.generateToken(guardian)
	if err != nil {
		return models.Guardian{}, "", err
	}
	return guardian, token, nil
}

func (s *AuthService) LoginGuardian(email, password string) (models.Guardian, string, error) {
	guardian, err := s.GuardianRepo.FindByEmail(email)
	if err != nil {
		return models.Guardian{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(guardian.Password), []byte(password)); err != nil {
		return models.Guardian{}, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(guardian)
	if err != nil {
		return models.Guardian{}, "", err
	}
	return guardian, token, nil
}

// UpdateDeviceToken stores the FCM token the dashboard registers for
// push alerts.
func (s *AuthService) UpdateDeviceToken(guardianID uint, deviceToken string) error {
	guardian, err := s.GuardianRepo.FindByID(guardianID)
	if err != nil {
		return err
	}
	guardian.DeviceToken = deviceToken
	return s.GuardianRepo.Save(guardian)
}

func (s *AuthService) generateToken(guardian models.Guardian) (string, error) {
	claims := jwt.MapClaims{
		"guardian_id": guardian.ID,
		"email":       guardian.Email,
		"exp":         time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}
