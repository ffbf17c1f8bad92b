package repository

import (
	"context"
	"time"

	"carelog-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AccountRepository struct {
	collection *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		collection: db.Collection("accounts"),
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()

	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, account)
	return err
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var account models.Account
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByGoogleID(ctx context.Context, googleID string) (*models.Account, error) {
	var account models.Account
	err := r.collection.FindOne(ctx, bson.M{"googleId": googleID}).Decode(&account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) UpdateRefreshToken(ctx context.Context, accountID, refreshToken string) error {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"refreshToken": refreshToken,
			"updatedAt":    time.Now(),
		},
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *AccountRepository) UpdateGoogleTokens(ctx context.Context, accountID, accessToken, refreshToken string, expiry time.Time) error {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"googleAccessToken": accessToken,
			"googleTokenExpiry": expiry,
			"updatedAt":         time.Now(),
		},
	}

	// Google only returns a refresh token on first consent; keep the stored
	// one when the exchange omits it.
	if refreshToken != "" {
		update["$set"].(bson.M)["googleRefreshToken"] = refreshToken
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}
