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

// RecordRepository persists activity records and hands them out with the
// client/staff/type display names already joined, so everything downstream
// (the report package included) works on plain denormalized rows.
type RecordRepository struct {
	collection *mongo.Collection
}

func NewRecordRepository(db *mongo.Database) *RecordRepository {
	r := &RecordRepository{
		collection: db.Collection("activity_records"),
	}

	// Ensure indexes
	ctx := context.Background()
	idxView := r.collection.Indexes()
	_, _ = idxView.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "activityDate", Value: 1}},
		Options: options.Index().SetName("idx_activity_date"),
	})
	_, _ = idxView.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "activityDate", Value: -1}},
		Options: options.Index().SetName("idx_client_date"),
	})
	_, _ = idxView.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "isCompleted", Value: 1}},
		Options: options.Index().SetName("idx_is_completed"),
	})

	return r
}

func (r *RecordRepository) Insert(ctx context.Context, rec *models.ActivityRecord) error {
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = time.Now()
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, rec)
	return err
}

func (r *RecordRepository) Update(ctx context.Context, id string, updates bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	updates["updatedAt"] = time.Now()
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": updates})
	return err
}

func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// Complete marks an open task as done.
func (r *RecordRepository) Complete(ctx context.Context, id string) error {
	return r.Update(ctx, id, bson.M{"isCompleted": true})
}

// AssignStaff reassigns a record to another staff member.
func (r *RecordRepository) AssignStaff(ctx context.Context, id, staffID string) error {
	soid, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return err
	}
	return r.Update(ctx, id, bson.M{"staffId": soid})
}

func (r *RecordRepository) FindByID(ctx context.Context, id string) (*models.ActivityRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	records, err := r.findJoined(ctx, bson.M{"_id": oid}, defaultSort())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &records[0], nil
}

// ListWindow returns joined records with activityDate in [from, to]
// inclusive, ordered by date ascending then start time ascending with
// missing times first. Dates are the canonical YYYY-MM-DD strings, which
// order lexically.
func (r *RecordRepository) ListWindow(ctx context.Context, from, to string) ([]models.ActivityRecord, error) {
	match := bson.M{"activityDate": bson.M{"$gte": from, "$lte": to}}
	return r.findJoined(ctx, match, defaultSort())
}

// ListFrom returns joined records with activityDate on or after from, for
// the open-ended analytics windows.
func (r *RecordRepository) ListFrom(ctx context.Context, from string) ([]models.ActivityRecord, error) {
	match := bson.M{"activityDate": bson.M{"$gte": from}}
	return r.findJoined(ctx, match, defaultSort())
}

// ListByClient returns a client's full history, newest first.
func (r *RecordRepository) ListByClient(ctx context.Context, clientID string) ([]models.ActivityRecord, error) {
	oid, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return nil, err
	}
	sort := bson.D{{Key: "activityDate", Value: -1}, {Key: "startTime", Value: -1}}
	return r.findJoined(ctx, bson.M{"clientId": oid}, sort)
}

// ListOpenTasks returns every not-yet-completed task. Only records with an
// explicit false flag are tasks; records from before the flag existed count
// as completed.
func (r *RecordRepository) ListOpenTasks(ctx context.Context) ([]models.ActivityRecord, error) {
	return r.findJoined(ctx, bson.M{"isCompleted": false}, defaultSort())
}

// LastActivityPerClient returns, for each client with any completed record,
// the date and staff name of the most recent one. Open tasks never count as
// contact, so a client with nothing but a future-dated task still shows as
// never visited. Legacy records without the flag count as completed, matching
// ResolveCompleted.
func (r *RecordRepository) LastActivityPerClient(ctx context.Context) ([]models.LastActivity, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"isCompleted": bson.M{"$ne": false}}},
		{"$sort": bson.D{{Key: "activityDate", Value: -1}, {Key: "startTime", Value: -1}}},
		{"$group": bson.M{
			"_id":          "$clientId",
			"activityDate": bson.M{"$first": "$activityDate"},
			"staffId":      bson.M{"$first": "$staffId"},
		}},
		{"$lookup": bson.M{
			"from":         "staff",
			"localField":   "staffId",
			"foreignField": "_id",
			"as":           "staffDoc",
		}},
		{"$project": bson.M{
			"activityDate": 1,
			"staffName":    bson.M{"$ifNull": []interface{}{bson.M{"$arrayElemAt": []interface{}{"$staffDoc.name", 0}}, ""}},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.LastActivity
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func defaultSort() bson.D {
	// MongoDB orders missing fields before strings ascending, which gives
	// the "times unset first" ordering the calendar wants.
	return bson.D{{Key: "activityDate", Value: 1}, {Key: "startTime", Value: 1}}
}

func (r *RecordRepository) findJoined(ctx context.Context, match bson.M, sort bson.D) ([]models.ActivityRecord, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$sort": sort},
		{"$lookup": bson.M{
			"from":         "clients",
			"localField":   "clientId",
			"foreignField": "_id",
			"as":           "clientDoc",
		}},
		{"$lookup": bson.M{
			"from":         "staff",
			"localField":   "staffId",
			"foreignField": "_id",
			"as":           "staffDoc",
		}},
		{"$lookup": bson.M{
			"from":         "activity_types",
			"localField":   "activityTypeId",
			"foreignField": "_id",
			"as":           "typeDoc",
		}},
		{"$addFields": bson.M{
			"clientName":        bson.M{"$arrayElemAt": []interface{}{"$clientDoc.name", 0}},
			"staffName":         bson.M{"$arrayElemAt": []interface{}{"$staffDoc.name", 0}},
			"activityTypeName":  bson.M{"$arrayElemAt": []interface{}{"$typeDoc.name", 0}},
			"activityTypeColor": bson.M{"$arrayElemAt": []interface{}{"$typeDoc.color", 0}},
		}},
		{"$project": bson.M{"clientDoc": 0, "staffDoc": 0, "typeDoc": 0}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ActivityRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	// Resolve the tri-state completion flag once, here.
	for i := range records {
		records[i].ResolveCompleted()
	}
	return records, nil
}
