package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(uri, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Set client options
	clientOptions := options.Client().ApplyURI(uri)

	// Connect to MongoDB
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the database
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	log.Println("Successfully connected to MongoDB!")

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (m *MongoDB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// Collection helpers
func (m *MongoDB) Accounts() *mongo.Collection {
	return m.Database.Collection("accounts")
}

func (m *MongoDB) Clients() *mongo.Collection {
	return m.Database.Collection("clients")
}

func (m *MongoDB) Staff() *mongo.Collection {
	return m.Database.Collection("staff")
}

func (m *MongoDB) ActivityTypes() *mongo.Collection {
	return m.Database.Collection("activity_types")
}

func (m *MongoDB) ActivityRecords() *mongo.Collection {
	return m.Database.Collection("activity_records")
}
