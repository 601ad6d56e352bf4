package services

import (
	"KidAsk/models"
	"KidAsk/repositories"
	"time"
)

// ExportSnapshot is the full data-subject export for one child.
// Counts are computed at export time, never cached.
type ExportSnapshot struct {
	ChildID          string                      `json:"childId"`
	ExportedAt       time.Time                   `json:"exportedAt"`
	Conversations    []models.ConversationRecord `json:"conversations"`
	FlaggedQuestions []models.FlaggedQuestion    `json:"flaggedQuestions"`
	ContentFilters   models.FilterSettings       `json:"contentFilters"`
	TotalQuestions   int                         `json:"totalQuestions"`
	FlaggedCount     int                         `json:"flaggedCount"`
}

// ComplianceService implements the data-subject rights operations over
// the same stores the live pipeline writes to.
type ComplianceService struct {
	ConversationRepo repositories.ConversationRepository
	FlaggedRepo      repositories.FlaggedRepository
	FilterRepo       repositories.FilterRepository
}

func NewComplianceService(
	conversationRepo repositories.ConversationRepository,
	flaggedRepo repositories.FlaggedRepository,
	filterRepo repositories.FilterRepository,
) *ComplianceService {
	return &ComplianceService{
		ConversationRepo: conversationRepo,
		FlaggedRepo:      flaggedRepo,
		FilterRepo:       filterRepo,
	}
}

// Export assembles a read-only snapshot of everything stored for the
// child. Unlike history queries, the export is not capped.
func (s *ComplianceService) Export(childID string) (ExportSnapshot, error) {
	conversations, err := s.ConversationRepo.Recent(childID, 0)
	if err != nil {
		return ExportSnapshot{}, err
	}
	flagged, err := s.FlaggedRepo.ListByChild(childID)
	if err != nil {
		return ExportSnapshot{}, err
	}
	settings, _, err := s.FilterRepo.Get(childID)
	if err != nil {
		return ExportSnapshot{}, err
	}

	return ExportSnapshot{
		ChildID:          childID,
		ExportedAt:       time.Now(),
		Conversations:    conversations,
		FlaggedQuestions: flagged,
		ContentFilters:   settings,
		TotalQuestions:   len(conversations),
		FlaggedCount:     len(flagged),
	}, nil
}

// EraseAll removes every record stored for the child and returns how
// many were deleted. The deletes are independent, so a crash can leave
// partial state; repeating the call converges to fully empty, and
// erasing an already-empty child succeeds with a zero count.
func (s *ComplianceService) EraseAll(childID string) (int, error) {
	deleted, err := s.ConversationRepo.DeleteAll(childID)
	if err != nil {
		return 0, err
	}

	flaggedDeleted, err := s.FlaggedRepo.DeleteAll(childID)
	if err != nil {
		return deleted, err
	}
	deleted += flaggedDeleted

	hadFilters, err := s.FilterRepo.Delete(childID)
	if err != nil {
		return deleted, err
	}
	if hadFilters {
		deleted++
	}

	return deleted, nil
}
