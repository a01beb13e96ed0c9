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

const (
	adminCollection      = "admin_users"
	superAdminCollection = "super_admin_users"
)

// ListAdmins optionally scopes to a university partition.
func ListAdmins(ctx context.Context, university string) ([]models.AdminUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if university != "" {
		filter["university"] = university
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := database.DB.Collection(adminCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	admins := []models.AdminUser{}
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func GetAdminByID(ctx context.Context, id bson.ObjectID) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := database.DB.Collection(adminCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func AdminExists(ctx context.Context, email, university string) (bool, error) {
	err := database.DB.Collection(adminCollection).
		FindOne(ctx, bson.M{"email": email, "university": university}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func InsertAdmin(ctx context.Context, admin *models.AdminUser) error {
	res, err := database.DB.Collection(adminCollection).InsertOne(ctx, admin)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

func UpdateAdmin(ctx context.Context, id bson.ObjectID, updates bson.M) (*models.AdminUser, error) {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var admin models.AdminUser
	err := database.DB.Collection(adminCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).
		Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func DeleteAdmin(ctx context.Context, id bson.ObjectID) error {
	res, err := database.DB.Collection(adminCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func ListSuperAdmins(ctx context.Context) ([]models.SuperAdminUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := database.DB.Collection(superAdminCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	admins := []models.SuperAdminUser{}
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func GetSuperAdminByID(ctx context.Context, id bson.ObjectID) (*models.SuperAdminUser, error) {
	var admin models.SuperAdminUser
	err := database.DB.Collection(superAdminCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func SuperAdminEmailExists(ctx context.Context, email string) (bool, error) {
	err := database.DB.Collection(superAdminCollection).
		FindOne(ctx, bson.M{"email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func InsertSuperAdmin(ctx context.Context, admin *models.SuperAdminUser) error {
	res, err := database.DB.Collection(superAdminCollection).InsertOne(ctx, admin)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

func UpdateSuperAdmin(ctx context.Context, id bson.ObjectID, updates bson.M) (*models.SuperAdminUser, error) {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var admin models.SuperAdminUser
	err := database.DB.Collection(superAdminCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).
		Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func DeleteSuperAdmin(ctx context.Context, id bson.ObjectID) error {
	res, err := database.DB.Collection(superAdminCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
