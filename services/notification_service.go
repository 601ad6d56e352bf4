package services

import (
	"KidAsk/repositories"
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService pushes an FCM alert to the guardian's device
// when one of their children's questions is held for review.
type NotificationService struct {
	FCMClient    *messaging.Client
	GuardianRepo repositories.GuardianRepository
	ProfileRepo  repositories.ProfileRepository
}

func NewNotificationService(
	fcmClient *messaging.Client,
	guardianRepo repositories.GuardianRepository,
	profileRepo repositories.ProfileRepository,
) *NotificationService {
	return &NotificationService{
		FCMClient:    fcmClient,
		GuardianRepo: guardianRepo,
		ProfileRepo:  profileRepo,
	}
}

func (s *NotificationService) NotifyQuestionFlagged(childID, question, reason string) error {
	// No FCM client means push is disabled for this deployment.
	if s.FCMClient == nil {
		return nil
	}

	profile, err := s.ProfileRepo.FindByChildID(childID)
	if err != nil {
		return fmt.Errorf("child profile not found: %w", err)
	}
	guardian, err := s.GuardianRepo.FindByID(profile.GuardianID)
	if err != nil {
		return fmt.Errorf("guardian not found: %w", err)
	}
	if guardian.DeviceToken == "" {
		return nil
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: "Nowe pytanie do sprawdzenia",
			Body:  fmt.Sprintf("%s zadał(a) pytanie zatrzymane przez filtr (%s)", profile.Name, reason),
		},
		Data: map[string]string{
			"childId":  childID,
			"question": question,
			"reason":   reason,
		},
		Token: guardian.DeviceToken,
	}

	resp, err := s.FCMClient.Send(context.Background(), message)
	if err != nil {
		log.Printf("[FCM] Error sending flagged-question alert: %v", err)
		return err
	}

	log.Printf("[FCM] Flagged-question alert sent. ID: %s, child: %s", resp, childID)
	return nil
}
