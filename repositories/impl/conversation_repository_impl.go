package impl

import (
	"KidAsk/models"
	"KidAsk/repositories"
	"encoding/json"
	"fmt"
	"sort"
)

func conversationPrefix(childID string) string {
	return "conversation:" + childID + ":"
}

// ConversationRepositoryImpl keeps each record under its own
// conversation:{childId}:{nanoTs} key, so one child's history is a
// plain prefix scan and can never leak into another child's.
type ConversationRepositoryImpl struct {
	KV repositories.KVRepository
}

func NewConversationRepository(kv repositories.KVRepository) repositories.ConversationRepository {
	return &ConversationRepositoryImpl{KV: kv}
}

func (r *ConversationRepositoryImpl) Append(record models.ConversationRecord) (string, error) {
	key := fmt.Sprintf("%s%d", conversationPrefix(record.ChildID), record.Timestamp.UnixNano())
	if err := r.KV.Set(key, record); err != nil {
		return "", err
	}
	return key, nil
}

func (r *ConversationRepositoryImpl) Recent(childID string, limit int) ([]models.ConversationRecord, error) {
	entries, err := r.KV.GetByPrefix(conversationPrefix(childID))
	if err != nil {
		return nil, err
	}

	records := make([]models.ConversationRecord, 0, len(entries))
	for _, entry := range entries {
		var record models.ConversationRecord
		if err := json.Unmarshal(entry.Value, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	// Newest first; stable so equal timestamps keep insertion order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *ConversationRepositoryImpl) DeleteAll(childID string) (int, error) {
	entries, err := r.KV.GetByPrefix(conversationPrefix(childID))
	if err != nil {
		return 0, err
	}

	// Delete by the keys the scan actually returned, never by
	// reconstructing them from positions.
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}
	if err := r.KV.MDel(keys); err != nil {
		return 0, err
	}
	return len(keys), nil
}
