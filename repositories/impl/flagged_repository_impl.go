package impl

import (
	"KidAsk/models"
	"KidAsk/repositories"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

func flaggedPrefix(childID string) string {
	return "flagged:" + childID + ":"
}

type FlaggedRepositoryImpl struct {
	KV repositories.KVRepository
}

func NewFlaggedRepository(kv repositories.KVRepository) repositories.FlaggedRepository {
	return &FlaggedRepositoryImpl{KV: kv}
}

func (r *FlaggedRepositoryImpl) Create(question models.FlaggedQuestion) (string, error) {
	key := fmt.Sprintf("%s%d", flaggedPrefix(question.ChildID), question.Timestamp.UnixNano())
	question.ID = key
	if err := r.KV.Set(key, question); err != nil {
		return "", err
	}
	return key, nil
}

func (r *FlaggedRepositoryImpl) Get(id string) (models.FlaggedQuestion, bool, error) {
	data, found, err := r.KV.Get(id)
	if err != nil || !found {
		return models.FlaggedQuestion{}, false, err
	}
	var question models.FlaggedQuestion
	if err := json.Unmarshal(data, &question); err != nil {
		return models.FlaggedQuestion{}, false, err
	}
	question.ID = id
	return question, true, nil
}

func (r *FlaggedRepositoryImpl) Update(question models.FlaggedQuestion) error {
	if question.ID == "" {
		return errors.New("flagged question has no id")
	}
	return r.KV.Set(question.ID, question)
}

func (r *FlaggedRepositoryImpl) ListByChild(childID string) ([]models.FlaggedQuestion, error) {
	entries, err := r.KV.GetByPrefix(flaggedPrefix(childID))
	if err != nil {
		return nil, err
	}

	questions := make([]models.FlaggedQuestion, 0, len(entries))
	for _, entry := range entries {
		var question models.FlaggedQuestion
		if err := json.Unmarshal(entry.Value, &question); err != nil {
			return nil, err
		}
		question.ID = entry.Key
		questions = append(questions, question)
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Timestamp.After(questions[j].Timestamp)
	})
	return questions, nil
}

func (r *FlaggedRepositoryImpl) DeleteAll(childID string) (int, error) {
	entries, err := r.KV.GetByPrefix(flaggedPrefix(childID))
	if err != nil {
		return 0, err
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}
	if err := r.KV.MDel(keys); err != nil {
		return 0, err
	}
	return len(keys), nil
}
