package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"meetspace-admin/database"
	"meetspace-admin/internal/models"
)

// updateAccountByEmail applies update to the role document for email,
// falling back to the user document when no role entry exists.
func updateAccountByEmail(ctx context.Context, email string, update bson.M) error {
	res, err := database.DB.Collection(roleCollection).UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	res, err = database.DB.Collection(userCollection).UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RecordLogin pushes a login history entry, stamps lastLogin and resets
// the failed-attempt counter.
func RecordLogin(ctx context.Context, email string, at time.Time) error {
	entry := models.LoginEntry{LoginTime: &at}
	return updateAccountByEmail(ctx, email, bson.M{
		"$push": bson.M{"loginHistory": entry},
		"$set": bson.M{
			"lastLogin":           at,
			"failedLoginAttempts": 0,
			"updatedAt":           at,
		},
	})
}

// StampLogout sets lastLogout and closes any open login history entries.
// The array update is best-effort: an account with no history is still
// stamped.
func StampLogout(ctx context.Context, email string, at time.Time) error {
	if err := updateAccountByEmail(ctx, email, bson.M{
		"$set": bson.M{"lastLogout": at, "updatedAt": at},
	}); err != nil {
		return err
	}

	closeOpen := bson.M{"$set": bson.M{"loginHistory.$[open].logoutTime": at}}
	opts := options.UpdateOne().SetArrayFilters([]interface{}{
		bson.M{"open.logoutTime": bson.M{"$exists": false}},
	})
	for _, name := range []string{roleCollection, userCollection} {
		_, _ = database.DB.Collection(name).UpdateOne(ctx,
			bson.M{"email": email, "loginHistory": bson.M{"$exists": true, "$ne": bson.A{}}},
			closeOpen, opts)
	}
	return nil
}

func RecordFailedLogin(ctx context.Context, email string) error {
	return updateAccountByEmail(ctx, email, bson.M{
		"$inc": bson.M{"failedLoginAttempts": 1},
	})
}

// SetPassword stores a new hash, clears the forced-change flag and
// stamps lastPasswordChange.
func SetPassword(ctx context.Context, email, hash string, at time.Time) error {
	return updateAccountByEmail(ctx, email, bson.M{
		"$set": bson.M{
			"password":              hash,
			"requirePasswordChange": false,
			"lastPasswordChange":    at,
			"updatedAt":             at,
		},
	})
}
