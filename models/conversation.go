package models

import "time"

// ConversationRecord is one answered question. Records are append-only:
// they are written either when a question passes the content filter or
// when a parent approves a flagged one, and are never updated afterwards.
type ConversationRecord struct {
	Question       string    `json:"question"`
	Answer         string    `json:"answer"`
	ChildID        string    `json:"childId"`
	Timestamp      time.Time `json:"timestamp"`
	Approved       bool      `json:"approved"`
	ParentApproved bool      `json:"parentApproved,omitempty"`
}
