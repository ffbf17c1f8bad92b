package repository

import (
	"context"
	"time"

	"carelog-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClientRepository struct {
	collection *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	r := &ClientRepository{
		collection: db.Collection("clients"),
	}

	// Ensure indexes
	ctx := context.Background()
	idxView := r.collection.Indexes()
	_, _ = idxView.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "masterUid", Value: 1}},
		Options: options.Index().SetName("idx_master_uid").SetSparse(true),
	})
	_, _ = idxView.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("idx_name"),
	})

	return r
}

func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()
	if client.ID.IsZero() {
		client.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, client)
	return err
}

// List returns clients sorted by name. Pass activeOnly to hide clients no
// longer receiving care.
func (r *ClientRepository) List(ctx context.Context, activeOnly bool) ([]models.Client, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*models.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var client models.Client
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) SetActive(ctx context.Context, id string, active bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

// UpsertByMasterUID creates or renames a client from the master resident
// database. New clients start active. Reports whether a document was created.
func (r *ClientRepository) UpsertByMasterUID(ctx context.Context, masterUID, name string) (bool, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":      name,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"isActive":  true,
			"createdAt": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	res, err := r.collection.UpdateOne(ctx, bson.M{"masterUid": masterUID}, update, opts)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}
