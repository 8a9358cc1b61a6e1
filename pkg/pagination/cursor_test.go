package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCursorEncodeDecode(t *testing.T) {
	cursor := &Cursor{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC().Round(time.Second),
	}

	encoded := cursor.Encode()
	decoded, err := DecodeCursor(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded == nil {
		t.Fatalf("decoded cursor is nil")
	}
	if decoded.ID != cursor.ID || !decoded.CreatedAt.Equal(cursor.CreatedAt) {
		t.Fatalf("decoded cursor mismatch: %+v", decoded)
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	if _, err := DecodeCursor("bad!=base64"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
}

func TestDecodeCursorEmpty(t *testing.T) {
	cursor, err := DecodeCursor("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cursor != nil {
		t.Fatalf("expected nil cursor, got %+v", cursor)
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-10, DefaultLimit},
		{MaxLimit + 1, MaxLimit},
		{50, 50},
	}

	for _, tt := range tests {
		if got := NormalizeLimit(tt.in); got != tt.want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPage(t *testing.T) {
	type row struct {
		id uuid.UUID
		at time.Time
	}
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]row, 4)
	for i := range rows {
		rows[i] = row{id: uuid.New(), at: base.Add(-time.Duration(i) * time.Hour)}
	}
	key := func(r row) Cursor { return Cursor{ID: r.id, CreatedAt: r.at} }

	page, next, more := Page(rows, 3, key)
	if len(page) != 3 || !more || next == "" {
		t.Fatalf("Page(4 rows, 3) = %d rows, more=%v, next=%q", len(page), more, next)
	}
	c, err := DecodeCursor(next)
	if err != nil || c.ID != rows[2].id {
		t.Fatalf("next cursor should point at third row, got %+v (err %v)", c, err)
	}

	page, next, more = Page(rows[:2], 3, key)
	if len(page) != 2 || more || next != "" {
		t.Fatalf("short page should have no cursor: %d rows, more=%v, next=%q", len(page), more, next)
	}
}
