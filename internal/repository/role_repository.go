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

const roleCollection = "role"

// ListRoles returns every role document. The collection only holds
// admin-tier identities so it stays small.
func ListRoles(ctx context.Context) ([]models.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection(roleCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	roles := []models.Role{}
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// ListRolesByEmails bulk-fetches roles for the given emails, used by the
// user-listing overlay.
func ListRolesByEmails(ctx context.Context, emails []string) ([]models.Role, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	cursor, err := database.DB.Collection(roleCollection).
		Find(ctx, bson.M{"email": bson.M{"$in": emails}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	roles := []models.Role{}
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// GetRoleByEmail expects the caller to have case-normalized email.
func GetRoleByEmail(ctx context.Context, email string) (*models.Role, error) {
	var role models.Role
	err := database.DB.Collection(roleCollection).
		FindOne(ctx, bson.M{"email": email}).Decode(&role)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func InsertRole(ctx context.Context, role *models.Role) error {
	res, err := database.DB.Collection(roleCollection).InsertOne(ctx, role)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		role.ID = oid
	}
	return nil
}

func UpdateRole(ctx context.Context, id bson.ObjectID, updates bson.M) (*models.Role, error) {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var role models.Role
	err := database.DB.Collection(roleCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).
		Decode(&role)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func DeleteRole(ctx context.Context, id bson.ObjectID) error {
	res, err := database.DB.Collection(roleCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func RoleEmailExists(ctx context.Context, email string) (bool, error) {
	err := database.DB.Collection(roleCollection).
		FindOne(ctx, bson.M{"email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
