package repositories

import (
	"chatbot-ai/internal/constants"
	"chatbot-ai/internal/models"
	"chatbot-ai/pkg/mongodb"
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type chatMessageMongoRepository struct {
	collection *mongo.Collection
}

func NewChatMessageMongoRepository(mongoClient *mongodb.MongoDBClient) ChatMessageRepository {
	return &chatMessageMongoRepository{
		collection: mongoClient.GetCollectionByName(constants.ChatInteractionTable),
	}
}

// EnsureMongoIndexes creates the username lookup index.
func EnsureMongoIndexes(ctx context.Context, mongoClient *mongodb.MongoDBClient) error {
	return ensureIndexes(ctx, mongoClient.GetCollectionByName(constants.ChatInteractionTable))
}

func ensureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}, {Key: "submitted_at", Value: 1}},
	})
	if err != nil {
		return &StorageError{Op: "create index", Err: err}
	}
	return nil
}

func (r *chatMessageMongoRepository) Save(ctx context.Context, message *models.ChatMessage) error {
	assigned := message.ID == ""
	if assigned {
		message.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, message); err != nil {
		if assigned {
			message.ID = ""
		}
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

func (r *chatMessageMongoRepository) FindByUsername(ctx context.Context, username string) ([]*models.ChatMessage, error) {
	messages := make([]*models.ChatMessage, 0)
	if username == "" {
		return messages, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, &StorageError{Op: "find_by_username", Err: err}
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &messages); err != nil {
		return nil, &StorageError{Op: "decode", Err: err}
	}
	return messages, nil
}
