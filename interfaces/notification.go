package interfaces

import "time"

// FlagNotifier delivers an out-of-band alert to the guardian when a
// child's question is held for review.
type FlagNotifier interface {
	NotifyQuestionFlagged(childID, question, reason string) error
}

// DashboardBroadcaster pushes live events to guardian dashboards
// watching a child's feed.
type DashboardBroadcaster interface {
	BroadcastDashboardEvent(childID string, event DashboardEvent)
}

// DashboardEvent is the message shape sent over the dashboard socket.
type DashboardEvent struct {
	Type      string    `json:"type"`
	ChildID   string    `json:"childId"`
	FlaggedID string    `json:"flaggedId,omitempty"`
	Question  string    `json:"question,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventQuestionFlagged   = "question_flagged"
	EventQuestionModerated = "question_moderated"
)
