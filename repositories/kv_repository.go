package repositories

// KVEntry is one scanned row: the value together with the key it is
// actually stored under. Bulk deletes must reuse these keys verbatim.
type KVEntry struct {
	Key   string
	Value []byte
}

// KVRepository is the durable key-value store the pipeline runs on.
// Point get/set, prefix scan and multi-key delete; no transactions and
// no ordering guarantees beyond what the caller encodes in key names.
type KVRepository interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value interface{}) error
	GetByPrefix(prefix string) ([]KVEntry, error)
	MDel(keys []string) error
}
