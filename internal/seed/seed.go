// Package seed loads demo users, chakra profiles and journal entries.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/repository"
	"github.com/blaisecz/soulsync/internal/sentiment"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// journalNamespace derives stable journal entry IDs so reseeding is a no-op.
var journalNamespace = uuid.MustParse("6f1c2a8e-3b7d-4e59-9a0c-5d2e8b4f7a13")

// DemoUser is a seeded account with its assessment and journal.
type DemoUser struct {
	User    domain.User
	Values  chakra.Values
	Journal []DemoEntry
}

// DemoEntry is one seeded journal entry, written DaysAgo days before now.
type DemoEntry struct {
	DaysAgo int
	Title   string
	Content string
	Mood    string
}

// Users is the demo data set. Each user exercises a different coach.
var Users = []DemoUser{
	{
		User: domain.User{
			ID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Email:       "maya@example.com",
			DisplayName: "Maya",
			Timezone:    "Europe/Prague",
			Role:        domain.RoleMember,
			Membership:  domain.MembershipFree,
		},
		Values: chakra.Values{
			chakra.Root: 3, chakra.Sacral: 4, chakra.SolarPlexus: 6, chakra.Heart: 7,
			chakra.Throat: 5, chakra.ThirdEye: 6, chakra.Crown: 6,
		},
		Journal: []DemoEntry{
			{DaysAgo: 6, Title: "Moving week", Content: "Everything feels uncertain and I am anxious about money.", Mood: "anxious"},
			{DaysAgo: 3, Title: "Walk in the park", Content: "Walked barefoot on the grass. Felt calm and grounded for a while.", Mood: "calm"},
			{DaysAgo: 1, Title: "Painting again", Content: "Started painting after months. I am grateful and hopeful.", Mood: "hopeful"},
		},
	},
	{
		User: domain.User{
			ID:          uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Email:       "leo@example.com",
			DisplayName: "Leo",
			Timezone:    "America/New_York",
			Role:        domain.RoleMember,
			Membership:  domain.MembershipPremium,
		},
		Values: chakra.Values{
			chakra.Root: 6, chakra.Sacral: 6, chakra.SolarPlexus: 9, chakra.Heart: 4,
			chakra.Throat: 7, chakra.ThirdEye: 6, chakra.Crown: 5,
		},
		Journal: []DemoEntry{
			{DaysAgo: 4, Title: "Team review", Content: "I was frustrated and angry that nobody followed my plan.", Mood: "frustrated"},
			{DaysAgo: 2, Title: "Call with my sister", Content: "We talked for an hour. I felt loved and less lonely.", Mood: "loved"},
		},
	},
	{
		User: domain.User{
			ID:          uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Email:       "ana@example.com",
			DisplayName: "Ana",
			Timezone:    "Asia/Tokyo",
			Role:        domain.RoleMember,
			Membership:  domain.MembershipFree,
		},
		Values: chakra.Values{
			chakra.Root: 6, chakra.Sacral: 6, chakra.SolarPlexus: 6, chakra.Heart: 6,
			chakra.Throat: 6, chakra.ThirdEye: 7, chakra.Crown: 7,
		},
		Journal: []DemoEntry{
			{DaysAgo: 2, Title: "Quiet morning", Content: "Meditated at sunrise. Peaceful and content.", Mood: "peaceful"},
		},
	},
	{
		User: domain.User{
			ID:          uuid.MustParse("44444444-4444-4444-4444-444444444444"),
			Email:       "admin@example.com",
			DisplayName: "Admin",
			Timezone:    "UTC",
			Role:        domain.RoleAdmin,
			Membership:  domain.MembershipPremium,
		},
	},
}

// Run seeds the database with the demo users. Safe to call multiple times:
// existing users and entries are left untouched and profiles are replaced.
func Run(ctx context.Context, db *gorm.DB) error {
	if err := repository.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	profiles := repository.NewChakraProfileRepository(db)
	analyzer := sentiment.NewAnalyzer()
	now := time.Now().UTC()

	for _, demo := range Users {
		user := demo.User
		if err := db.WithContext(ctx).Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		if len(demo.Values) > 0 {
			profile := &domain.ChakraProfile{UserID: user.ID, AssessedAt: now}
			profile.SetValues(demo.Values)
			if err := profiles.Replace(ctx, profile); err != nil {
				return fmt.Errorf("failed to store profile for %s: %w", user.ID, err)
			}
		}

		for i, e := range demo.Journal {
			if err := seedEntry(ctx, db, analyzer, user.ID, i, e, now); err != nil {
				return err
			}
		}
	}

	zap.L().Info("seed completed", zap.Int("users", len(Users)))
	return nil
}

func seedEntry(ctx context.Context, db *gorm.DB, analyzer *sentiment.Analyzer, userID uuid.UUID, i int, e DemoEntry, now time.Time) error {
	result := analyzer.Analyze(e.Title+". "+e.Content, e.Mood)
	entry := domain.JournalEntry{
		ID:             uuid.NewSHA1(journalNamespace, []byte(fmt.Sprintf("%s-%d", userID, i))),
		UserID:         userID,
		Title:          e.Title,
		Content:        e.Content,
		Mood:           e.Mood,
		SentimentLabel: string(result.Label),
		SentimentScore: result.Score,
		CreatedAt:      now.AddDate(0, 0, -e.DaysAgo),
	}
	entry.SetEmotionTags(result.Emotions)

	if err := db.WithContext(ctx).Where("id = ?", entry.ID).FirstOrCreate(&entry).Error; err != nil {
		return fmt.Errorf("failed to create journal entry: %w", err)
	}
	return nil
}
