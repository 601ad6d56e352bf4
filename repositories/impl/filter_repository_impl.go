package impl

import (
	"KidAsk/models"
	"KidAsk/repositories"
	"encoding/json"
)

func filterKey(childID string) string {
	return "filters:" + childID
}

type FilterRepositoryImpl struct {
	KV repositories.KVRepository
}

func NewFilterRepository(kv repositories.KVRepository) repositories.FilterRepository {
	return &FilterRepositoryImpl{KV: kv}
}

func (r *FilterRepositoryImpl) Get(childID string) (models.FilterSettings, bool, error) {
	data, found, err := r.KV.Get(filterKey(childID))
	if err != nil || !found {
		return models.FilterSettings{}, false, err
	}
	var settings models.FilterSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.FilterSettings{}, false, err
	}
	return settings, true, nil
}

func (r *FilterRepositoryImpl) Save(childID string, settings models.FilterSettings) error {
	return r.KV.Set(filterKey(childID), settings)
}

func (r *FilterRepositoryImpl) Delete(childID string) (bool, error) {
	_, found, err := r.KV.Get(filterKey(childID))
	if err != nil || !found {
		return false, err
	}
	if err := r.KV.MDel([]string{filterKey(childID)}); err != nil {
		return false, err
	}
	return true, nil
}
