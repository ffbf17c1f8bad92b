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

type StaffRepository struct {
	collection *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) *StaffRepository {
	r := &StaffRepository{
		collection: db.Collection("staff"),
	}

	ctx := context.Background()
	_, _ = r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("idx_email").SetUnique(true).SetSparse(true),
	})

	return r
}

func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = time.Now()
	if staff.ID.IsZero() {
		staff.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, staff)
	return err
}

func (r *StaffRepository) List(ctx context.Context, activeOnly bool) ([]models.Staff, error) {
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

	var staff []models.Staff
	if err = cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *StaffRepository) SetActive(ctx context.Context, id string, active bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

// IsDuplicateKey reports whether an insert failed on the unique email index.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
