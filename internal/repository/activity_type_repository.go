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

type ActivityTypeRepository struct {
	collection *mongo.Collection
}

func NewActivityTypeRepository(db *mongo.Database) *ActivityTypeRepository {
	return &ActivityTypeRepository{
		collection: db.Collection("activity_types"),
	}
}

func (r *ActivityTypeRepository) Create(ctx context.Context, at *models.ActivityType) error {
	at.CreatedAt = time.Now()
	if at.ID.IsZero() {
		at.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, at)
	return err
}

func (r *ActivityTypeRepository) List(ctx context.Context, activeOnly bool) ([]models.ActivityType, error) {
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

	var types []models.ActivityType
	if err = cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *ActivityTypeRepository) SetActive(ctx context.Context, id string, active bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"isActive": active}})
	return err
}
