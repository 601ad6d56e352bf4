package repositories

import "KidAsk/models"

// ConversationRepository persists answered questions per child.
// Records are append-only; individual records are never updated or
// deleted, only the whole per-child namespace via DeleteAll.
type ConversationRepository interface {
	Append(record models.ConversationRecord) (string, error)
	// Recent returns records newest first. limit <= 0 means all.
	Recent(childID string, limit int) ([]models.ConversationRecord, error)
	DeleteAll(childID string) (int, error)
}
