package impl

import (
	"KidAsk/models"
	"KidAsk/repositories"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepositoryImpl stores every pipeline record as a row in a single
// kv_entries table, the same shape the hosted key-value store had.
type KVRepositoryImpl struct {
	DB *gorm.DB
}

func NewKVRepository(db *gorm.DB) repositories.KVRepository {
	return &KVRepositoryImpl{DB: db}
}

func (r *KVRepositoryImpl) Get(key string) ([]byte, bool, error) {
	var entry models.KVEntry
	if err := r.DB.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

func (r *KVRepositoryImpl) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := models.KVEntry{Key: key, Value: string(data)}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

func (r *KVRepositoryImpl) GetByPrefix(prefix string) ([]repositories.KVEntry, error) {
	var rows []models.KVEntry
	if err := r.DB.Where("key LIKE ?", prefix+"%").Order("key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]repositories.KVEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, repositories.KVEntry{Key: row.Key, Value: []byte(row.Value)})
	}
	return entries, nil
}

func (r *KVRepositoryImpl) MDel(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.DB.Where("key IN ?", keys).Delete(&models.KVEntry{}).Error
}
