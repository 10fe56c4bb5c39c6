package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDbConfigModel struct {
	ConnectionUrl string
	DatabaseName  string
}

type MongoDBClient struct {
	Client *mongo.Client
	Config MongoDbConfigModel
}

// InitializeDatabaseConnection connects and pings the server before handing
// the client out.
func InitializeDatabaseConnection(ctx context.Context, config MongoDbConfigModel) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionUrl))
	if err != nil {
		return nil, fmt.Errorf("mongodb connection error: %w", err)
	}

	if err := mongoClient.Ping(ctx, nil); err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping error: %w", err)
	}

	return &MongoDBClient{
		Client: mongoClient,
		Config: config,
	}, nil
}

func (client *MongoDBClient) GetCollectionByName(collectionName string) *mongo.Collection {
	return client.Client.Database(client.Config.DatabaseName).Collection(collectionName)
}

func (client *MongoDBClient) Close(ctx context.Context) error {
	return client.Client.Disconnect(ctx)
}
