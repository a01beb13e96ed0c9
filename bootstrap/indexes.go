package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the uniqueness and lookup indexes the API relies on.
// Duplicate create calls are no-ops on the server side.
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	_, err := db.Collection("user").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("role").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_role_email"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("payments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tx_ref", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_payment_tx_ref"),
		},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "payment_date", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("events").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("planDefinitions").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_plan_slug"),
		},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "displayOrder", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("admin_users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "university", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_admin_email_university"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("super_admin_users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_superadmin_email"),
	})
	return err
}
