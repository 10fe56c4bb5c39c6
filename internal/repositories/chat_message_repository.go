package repositories

import (
	"chatbot-ai/internal/models"
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepository interface {
	// Save persists a new record and assigns its ID when empty.
	Save(ctx context.Context, message *models.ChatMessage) error
	// FindByUsername returns the records whose username matches exactly,
	// oldest first. An empty username yields an empty result.
	FindByUsername(ctx context.Context, username string) ([]*models.ChatMessage, error)
}

// StorageError wraps any failure raised by the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

type chatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

// Migrate creates or updates the chat_interaction table. MySQL tables get a
// binary collation so text comparisons stay case and space sensitive.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "mysql" {
		db = db.Set("gorm:table_options", "DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin")
	}
	if err := db.AutoMigrate(&models.ChatMessage{}); err != nil {
		return &StorageError{Op: "migrate", Err: err}
	}
	return nil
}

func (r *chatMessageRepository) Save(ctx context.Context, message *models.ChatMessage) error {
	assigned := message.ID == ""
	if assigned {
		message.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		if assigned {
			message.ID = ""
		}
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

func (r *chatMessageRepository) FindByUsername(ctx context.Context, username string) ([]*models.ChatMessage, error) {
	messages := make([]*models.ChatMessage, 0)
	if username == "" {
		return messages, nil
	}

	err := byUsername(r.db.WithContext(ctx), username).Find(&messages).Error
	if err != nil {
		return nil, &StorageError{Op: "find_by_username", Err: err}
	}
	return messages, nil
}

func byUsername(tx *gorm.DB, username string) *gorm.DB {
	return tx.Where(usernameMatch(tx), username).Order("submitted_at ASC")
}

// usernameMatch is the exact-match predicate for the username column. MySQL
// compares with its column collation, which ignores case and trailing spaces
// by default, so the comparison is forced to bytes there.
func usernameMatch(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return "BINARY username = ?"
	}
	return "username = ?"
}
