package repositories

import (
	"chatbot-ai/internal/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestSaveAssignsID(t *testing.T) {
	repo := NewChatMessageRepository(newTestDB(t))
	msg := models.NewChatMessage("user", "Hello", "alice")
	msg.Response = "Hi there"

	require.NoError(t, repo.Save(context.Background(), msg))
	assert.NotEmpty(t, msg.ID)

	found, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, msg.ID, found[0].ID)
	assert.Equal(t, "user", found[0].ChatRole)
	assert.Equal(t, "Hello", found[0].Message)
	assert.Equal(t, "Hi there", found[0].Response)
	assert.Equal(t, "alice", found[0].Username)
}

func TestFindByUsernameExactMatchOrdered(t *testing.T) {
	repo := NewChatMessageRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	second := models.NewChatMessage("user", "second", "alice")
	second.SubmittedAt = base.Add(time.Minute)
	first := models.NewChatMessage("user", "first", "alice")
	first.SubmittedAt = base
	other := models.NewChatMessage("user", "other", "Alice")
	other.SubmittedAt = base
	prefix := models.NewChatMessage("user", "prefix", "alice2")
	prefix.SubmittedAt = base

	for _, m := range []*models.ChatMessage{second, first, other, prefix} {
		require.NoError(t, repo.Save(ctx, m))
	}

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "first", found[0].Message)
	assert.Equal(t, "second", found[1].Message)
}

func TestFindByUsernameUnknownOrEmpty(t *testing.T) {
	repo := NewChatMessageRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, models.NewChatMessage("user", "anonymous", "")))

	found, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)

	found, err = repo.FindByUsername(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestStorageErrorWrapsCause(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	repo := NewChatMessageRepository(db)
	msg := models.NewChatMessage("user", "Hello", "alice")
	err = repo.Save(context.Background(), msg)

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "save", storageErr.Op)
	assert.NotNil(t, errors.Unwrap(err))
	assert.Empty(t, msg.ID)

	given := models.NewChatMessage("user", "Hello", "alice")
	given.ID = "caller-id"
	require.Error(t, repo.Save(context.Background(), given))
	assert.Equal(t, "caller-id", given.ID)

	_, err = repo.FindByUsername(context.Background(), "alice")
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "find_by_username", storageErr.Op)
}

func TestByUsernameQueryPerDialect(t *testing.T) {
	mysqlDB, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "chatbot:secret@tcp(127.0.0.1:3306)/chatbot?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		db      *gorm.DB
		want    string
		notWant string
	}{
		{name: "mysql", db: mysqlDB, want: "BINARY username = 'alice'"},
		{name: "sqlite", db: newTestDB(t), want: "username = ", notWant: "BINARY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := tt.db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				var messages []*models.ChatMessage
				return byUsername(tx, "alice").Find(&messages)
			})
			assert.Contains(t, sql, tt.want)
			assert.Contains(t, sql, "ORDER BY submitted_at ASC")
			if tt.notWant != "" {
				assert.NotContains(t, sql, tt.notWant)
			}
		})
	}
}

func TestFindByUsernameIgnoresNearMatches(t *testing.T) {
	repo := NewChatMessageRepository(newTestDB(t))
	ctx := context.Background()
	for _, u := range []string{"alice", "ALICE", "alice ", " alice"} {
		require.NoError(t, repo.Save(ctx, models.NewChatMessage("user", "hi", u)))
	}

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alice", found[0].Username)
}
