package services

import (
	"KidAsk/interfaces"
	"KidAsk/models"
	"KidAsk/repositories"
	"errors"
	"time"
)

var (
	ErrFlaggedNotFound  = errors.New("flagged question not found")
	ErrAlreadyModerated = errors.New("flagged question already moderated")
	ErrInvalidAction    = errors.New("invalid moderation action")
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"

	// Used when neither the request nor a child profile supplies an age.
	defaultModerationAge = 7
)

// ModerationService resolves flagged questions. A record leaves
// pending exactly once: once approved or rejected it stays that way,
// so two racing moderations cannot both take effect.
type ModerationService struct {
	FlaggedRepo      repositories.FlaggedRepository
	ConversationRepo repositories.ConversationRepository
	ProfileRepo      repositories.ProfileRepository
	Answers          AnswerProvider
	Dashboard        interfaces.DashboardBroadcaster
}

func NewModerationService(
	flaggedRepo repositories.FlaggedRepository,
	conversationRepo repositories.ConversationRepository,
	profileRepo repositories.ProfileRepository,
	answers AnswerProvider,
	dashboard interfaces.DashboardBroadcaster,
) *ModerationService {
	return &ModerationService{
		FlaggedRepo:      flaggedRepo,
		ConversationRepo: conversationRepo,
		ProfileRepo:      profileRepo,
		Answers:          answers,
		Dashboard:        dashboard,
	}
}

// Moderate applies the parent's decision. On approve it generates an
// answer, appends exactly one parent-approved conversation record and
// then marks the flagged question; on reject it only stamps the
// status.
func (s *ModerationService) Moderate(flaggedID, action, childID string, childAge int) error {
	if action != ActionApprove && action != ActionReject {
		return ErrInvalidAction
	}

	flagged, found, err := s.FlaggedRepo.Get(flaggedID)
	if err != nil {
		return err
	}
	if !found {
		return ErrFlaggedNotFound
	}
	if flagged.IsTerminal() {
		return ErrAlreadyModerated
	}

	// The stored record is authoritative when the request omits the child.
	if childID == "" {
		childID = flagged.ChildID
	}

	now := time.Now()

	if action == ActionApprove {
		generated := s.Answers.Generate(flagged.Question, models.AgeBandFor(s.resolveAge(childID, childAge)))

		if _, err := s.ConversationRepo.Append(models.ConversationRecord{
			Question:       flagged.Question,
			Answer:         generated.Answer,
			ChildID:        childID,
			Timestamp:      now,
			Approved:       true,
			ParentApproved: true,
		}); err != nil {
			return err
		}
		flagged.Status = models.FlaggedStatusApproved
	} else {
		flagged.Status = models.FlaggedStatusRejected
	}

	flagged.ModeratedAt = &now
	if err := s.FlaggedRepo.Update(flagged); err != nil {
		return err
	}

	if s.Dashboard != nil {
		s.Dashboard.BroadcastDashboardEvent(childID, interfaces.DashboardEvent{
			Type:      interfaces.EventQuestionModerated,
			ChildID:   childID,
			FlaggedID: flagged.ID,
			Question:  flagged.Question,
			Status:    string(flagged.Status),
			Timestamp: now,
		})
	}
	return nil
}

// resolveAge prefers the age the parent supplied with the decision,
// then the registered profile, then the fallback.
func (s *ModerationService) resolveAge(childID string, requestAge int) int {
	if requestAge > 0 {
		return requestAge
	}
	if s.ProfileRepo != nil {
		if profile, err := s.ProfileRepo.FindByChildID(childID); err == nil {
			return profile.Age()
		}
	}
	return defaultModerationAge
}
