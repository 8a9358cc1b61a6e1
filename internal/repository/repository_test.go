package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func createUser(t *testing.T, repo UserRepository, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:       email,
		DisplayName: "Test",
		Timezone:    "UTC",
		Role:        domain.RoleMember,
		Membership:  domain.MembershipFree,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	u := createUser(t, repo, "maya@example.com")
	assert.NotEqual(t, uuid.Nil, u.ID)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "maya@example.com", got.Email)

	byEmail, err := repo.GetByEmail(ctx, "maya@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	exists, err := repo.Exists(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	got.Membership = domain.MembershipPremium
	require.NoError(t, repo.Update(ctx, got))

	premium, err := repo.CountByMembership(ctx, domain.MembershipPremium)
	require.NoError(t, err)
	assert.Equal(t, int64(1), premium)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUserRepository_ListPaginates(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	for i := 0; i < 5; i++ {
		createUser(t, repo, fmt.Sprintf("user%d@example.com", i))
	}

	seen := make(map[uuid.UUID]bool)
	cursor := ""
	for page := 0; page < 3; page++ {
		users, err := repo.List(ctx, domain.UserFilter{Limit: 2, Cursor: cursor})
		require.NoError(t, err)

		kept, next, _ := pagination.Page(users, 2, func(u domain.User) pagination.Cursor {
			return pagination.Cursor{ID: u.ID, CreatedAt: u.CreatedAt}
		})
		for _, u := range kept {
			assert.False(t, seen[u.ID], "user %s returned twice", u.ID)
			seen[u.ID] = true
		}
		cursor = next
		if cursor == "" {
			break
		}
	}
	assert.Len(t, seen, 5)
}

func TestChakraProfileRepository_ReplaceOverwrites(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewChakraProfileRepository(db)
	u := createUser(t, users, "asha@example.com")

	_, err := repo.GetByUserID(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first := &domain.ChakraProfile{UserID: u.ID, AssessedAt: time.Now().UTC()}
	first.SetValues(chakra.DefaultValues())
	require.NoError(t, repo.Replace(ctx, first))

	second := &domain.ChakraProfile{UserID: u.ID, AssessedAt: time.Now().UTC()}
	values := chakra.DefaultValues()
	values[chakra.Heart] = 9
	second.SetValues(values)
	require.NoError(t, repo.Replace(ctx, second))

	got, err := repo.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, 9, got.Heart)
	assert.Equal(t, 5, got.Root)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestJournalRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewJournalRepository(db)
	u := createUser(t, users, "journal@example.com")
	other := createUser(t, users, "other@example.com")

	tags := [][]string{{"anxiety"}, {"anxiety", "fatigue"}, {"hope"}}
	for i, tt := range tags {
		e := &domain.JournalEntry{
			UserID:         u.ID,
			Title:          fmt.Sprintf("entry %d", i),
			Content:        "text",
			SentimentLabel: "neutral",
		}
		e.SetEmotionTags(tt)
		require.NoError(t, repo.Create(ctx, e))
		time.Sleep(2 * time.Millisecond)
	}
	require.NoError(t, repo.Create(ctx, &domain.JournalEntry{
		UserID: other.ID, Title: "x", Content: "y", SentimentLabel: "neutral", Emotions: "anger",
	}))

	entries, err := repo.List(ctx, u.ID, domain.JournalFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 3, "list fetches limit+1 rows")
	assert.Equal(t, "entry 2", entries[0].Title)

	emotions, err := repo.RecentEmotions(ctx, u.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"hope", "anxiety", "fatigue"}, emotions)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestChatRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewChatRepository(db)
	u := createUser(t, users, "chat@example.com")

	start := time.Now().UTC().Add(-time.Second)
	for i, role := range []domain.ChatRole{domain.ChatRoleUser, domain.ChatRoleAssistant, domain.ChatRoleUser} {
		require.NoError(t, repo.Create(ctx, &domain.ChatMessage{
			UserID:    u.ID,
			Role:      role,
			Content:   fmt.Sprintf("msg %d", i),
			CoachType: chakra.CoachInnerChild,
		}))
		time.Sleep(2 * time.Millisecond)
	}

	recent, err := repo.Recent(ctx, u.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "msg 1", recent[0].Content)
	assert.Equal(t, "msg 2", recent[1].Content)

	n, err := repo.CountSince(ctx, u.ID, domain.ChatRoleUser, start)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountSince(ctx, u.ID, domain.ChatRoleUser, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	require.NoError(t, repo.Delete(ctx, recent[1].ID))
	n, err = repo.CountSince(ctx, u.ID, domain.ChatRoleUser, start)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestChatRepository_HasTrace(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewChatRepository(db)
	owner := createUser(t, users, "owner@example.com")
	other := createUser(t, users, "other@example.com")

	require.NoError(t, repo.Create(ctx, &domain.ChatMessage{
		UserID:    owner.ID,
		Role:      domain.ChatRoleAssistant,
		Content:   "reply",
		CoachType: chakra.CoachHigherSelf,
		TraceID:   "trace-abc",
	}))

	tests := []struct {
		name    string
		userID  uuid.UUID
		traceID string
		want    bool
	}{
		{"owner", owner.ID, "trace-abc", true},
		{"other user", other.ID, "trace-abc", false},
		{"unknown trace", owner.ID, "trace-xyz", false},
		{"empty trace", owner.ID, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasTrace(ctx, tt.userID, tt.traceID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
