package models

// KVEntry is the row type backing the key-value store: a single table
// of string keys and JSON-encoded values, scanned by key prefix.
type KVEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;type:text"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
