package services

import (
	"KidAsk/interfaces"
	"KidAsk/models"
	"KidAsk/repositories"
	"log"
	"time"
)

// historyLimit caps how many records a history query returns.
const historyLimit = 50

const flaggedMessage = "Pytanie zostało wysłane do rodzica do sprawdzenia."

// ProcessResult is the outcome of running one question through the
// pipeline: either an answer with its stored conversation id, or a
// flagged notice.
type ProcessResult struct {
	Success         bool
	Answer          string
	VideoSuggestion string
	ConversationID  string

	Flagged bool
	Reason  string
	Message string
}

// QuestionService is the evaluate-and-respond pipeline. Every call is
// a self-contained request: all state lives in the repositories, so
// concurrent questions for the same child interleave freely and each
// write lands on its own fresh key.
type QuestionService struct {
	ConversationRepo repositories.ConversationRepository
	FlaggedRepo      repositories.FlaggedRepository
	FilterRepo       repositories.FilterRepository
	Filter           *FilterService
	Answers          AnswerProvider
	Notifier         interfaces.FlagNotifier
	Dashboard        interfaces.DashboardBroadcaster
}

func NewQuestionService(
	conversationRepo repositories.ConversationRepository,
	flaggedRepo repositories.FlaggedRepository,
	filterRepo repositories.FilterRepository,
	filter *FilterService,
	answers AnswerProvider,
	notifier interfaces.FlagNotifier,
	dashboard interfaces.DashboardBroadcaster,
) *QuestionService {
	return &QuestionService{
		ConversationRepo: conversationRepo,
		FlaggedRepo:      flaggedRepo,
		FilterRepo:       filterRepo,
		Filter:           filter,
		Answers:          answers,
		Notifier:         notifier,
		Dashboard:        dashboard,
	}
}

// ProcessQuestion evaluates the question against the child's filters
// and either answers it and stores the conversation, or parks it in
// the moderation queue for the parent.
func (s *QuestionService) ProcessQuestion(question, childID string, childAge int) (ProcessResult, error) {
	settings, _, err := s.FilterRepo.Get(childID)
	if err != nil {
		return ProcessResult{}, err
	}

	verdict := s.Filter.Evaluate(question, settings)
	now := time.Now()

	if verdict.Flagged {
		flagged := models.FlaggedQuestion{
			Question:  question,
			ChildID:   childID,
			Reason:    verdict.Reason,
			Timestamp: now,
			Status:    models.FlaggedStatusPending,
		}
		flaggedID, err := s.FlaggedRepo.Create(flagged)
		if err != nil {
			return ProcessResult{}, err
		}

		// Alerts are best effort; a push failure must not fail the
		// child's request.
		if s.Notifier != nil {
			if err := s.Notifier.NotifyQuestionFlagged(childID, question, verdict.Reason); err != nil {
				log.Printf("Error notifying guardian about flagged question: %v", err)
			}
		}
		if s.Dashboard != nil {
			s.Dashboard.BroadcastDashboardEvent(childID, interfaces.DashboardEvent{
				Type:      interfaces.EventQuestionFlagged,
				ChildID:   childID,
				FlaggedID: flaggedID,
				Question:  question,
				Reason:    verdict.Reason,
				Timestamp: now,
			})
		}

		return ProcessResult{
			Flagged: true,
			Reason:  verdict.Reason,
			Message: flaggedMessage,
		}, nil
	}

	generated := s.Answers.Generate(question, models.AgeBandFor(childAge))

	conversationID, err := s.ConversationRepo.Append(models.ConversationRecord{
		Question:  question,
		Answer:    generated.Answer,
		ChildID:   childID,
		Timestamp: now,
		Approved:  true,
	})
	if err != nil {
		return ProcessResult{}, err
	}

	return ProcessResult{
		Success:         true,
		Answer:          generated.Answer,
		VideoSuggestion: generated.VideoSuggestion,
		ConversationID:  conversationID,
	}, nil
}

// History returns the child's most recent conversations, newest first.
func (s *QuestionService) History(childID string) ([]models.ConversationRecord, error) {
	return s.ConversationRepo.Recent(childID, historyLimit)
}

// Flagged returns the child's flagged questions, newest first.
func (s *QuestionService) Flagged(childID string) ([]models.FlaggedQuestion, error) {
	return s.FlaggedRepo.ListByChild(childID)
}

// UpdateFilters replaces the child's filter settings. Last write wins.
func (s *QuestionService) UpdateFilters(childID string, settings models.FilterSettings) error {
	return s.FilterRepo.Save(childID, settings)
}
