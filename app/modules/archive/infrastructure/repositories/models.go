package archivedb

import (
	"time"

	"github.com/uptrace/bun"
)

// KVEntry is one row of the key-value table backing SQLStore.
type KVEntry struct {
	bun.BaseModel `bun:"table:kv_entries,alias:kv"`

	Key       string    `bun:"entry_key,pk"`
	Value     string    `bun:"entry_value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
