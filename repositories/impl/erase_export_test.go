package impl

import (
	"KidAsk/models"
	"KidAsk/services"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Runs erase-then-export end to end over the real KV-backed
// repositories, not mocks: after EraseAll the export must come back
// with empty lists and zero counts.
func TestEraseThenExportIsEmpty(t *testing.T) {
	kv := newFakeKV()
	conversationRepo := NewConversationRepository(kv)
	flaggedRepo := NewFlaggedRepository(kv)
	filterRepo := NewFilterRepository(kv)
	service := services.NewComplianceService(conversationRepo, flaggedRepo, filterRepo)

	now := time.Now()
	_, err := conversationRepo.Append(record("child-1", "Dlaczego niebo jest niebieskie?", now))
	assert.NoError(t, err)
	_, err = conversationRepo.Append(record("child-1", "Czy rybki śpią?", now.Add(time.Second)))
	assert.NoError(t, err)
	_, err = flaggedRepo.Create(models.FlaggedQuestion{
		Question:  "Co to jest wojna?",
		ChildID:   "child-1",
		Reason:    "Filtr: przemoc",
		Timestamp: now,
		Status:    models.FlaggedStatusPending,
	})
	assert.NoError(t, err)
	assert.NoError(t, filterRepo.Save("child-1", models.FilterSettings{
		CustomKeywords: models.ContentFilters{models.CategoryCustom: {"gry"}},
	}))

	// Another child's data must survive the erase untouched.
	_, err = conversationRepo.Append(record("child-2", "Jak powstają tęcze?", now))
	assert.NoError(t, err)

	deleted, err := service.EraseAll("child-1")
	assert.NoError(t, err)
	assert.Equal(t, 4, deleted)

	snapshot, err := service.Export("child-1")
	assert.NoError(t, err)
	assert.Empty(t, snapshot.Conversations)
	assert.Empty(t, snapshot.FlaggedQuestions)
	assert.Empty(t, snapshot.ContentFilters.CustomKeywords)
	assert.Zero(t, snapshot.TotalQuestions)
	assert.Zero(t, snapshot.FlaggedCount)

	other, err := service.Export("child-2")
	assert.NoError(t, err)
	assert.Equal(t, 1, other.TotalQuestions)
}
