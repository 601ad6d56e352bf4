package models

import "time"

// FlaggedStatus is the moderation state of a flagged question.
// Pending is the only non-terminal state; approved and rejected are
// final and a record reaches one of them at most once.
type FlaggedStatus string

const (
	FlaggedStatusPending  FlaggedStatus = "pending"
	FlaggedStatusApproved FlaggedStatus = "approved"
	FlaggedStatusRejected FlaggedStatus = "rejected"
)

// FlaggedQuestion is a question held for parent review. ID is the
// storage key under which the record lives (flagged:{childId}:{ts}).
type FlaggedQuestion struct {
	ID          string        `json:"id"`
	Question    string        `json:"question"`
	ChildID     string        `json:"childId"`
	Reason      string        `json:"reason"`
	Timestamp   time.Time     `json:"timestamp"`
	Status      FlaggedStatus `json:"status"`
	ModeratedAt *time.Time    `json:"moderatedAt,omitempty"`
}

// IsTerminal reports whether the question has already been moderated.
func (q *FlaggedQuestion) IsTerminal() bool {
	return q.Status == FlaggedStatusApproved || q.Status == FlaggedStatusRejected
}
