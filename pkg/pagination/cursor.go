// Package pagination implements opaque keyset cursors for newest-first lists.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Cursor marks the last row of a page ordered by (created_at, id) descending.
type Cursor struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Encode encodes the cursor to a base64 string
func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeCursor decodes a base64 cursor string. An empty string yields a nil
// cursor and no error.
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, err
	}

	return &cursor, nil
}

// NormalizeLimit ensures limit is within bounds
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Page trims rows fetched with limit+1 to limit and builds the next cursor
// from the last kept row. key extracts the cursor fields of a row.
func Page[T any](rows []T, limit int, key func(T) Cursor) ([]T, string, bool) {
	limit = NormalizeLimit(limit)
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	if !hasMore || len(rows) == 0 {
		return rows, "", hasMore
	}
	c := key(rows[len(rows)-1])
	return rows, c.Encode(), true
}
