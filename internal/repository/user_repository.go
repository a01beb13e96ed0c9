package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"meetspace-admin/database"
	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
)

const userCollection = "user"

// BuildUserFilter turns free-text search into a case-insensitive regex
// over the user string fields. Empty search means no filter.
func BuildUserFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	regex := bson.M{"$regex": search, "$options": "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": regex},
		bson.M{"email": regex},
		bson.M{"role": regex},
	}}
}

func ListUsers(ctx context.Context, q dto.PageQuery) ([]models.User, int64, error) {
	collection := database.DB.Collection(userCollection)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := BuildUserFilter(q.Search)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func GetUserByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var user models.User
	err := database.DB.Collection(userCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := database.DB.Collection(userCollection).
		FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func UserEmailExists(ctx context.Context, email string) (bool, error) {
	err := database.DB.Collection(userCollection).
		FindOne(ctx, bson.M{"email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func InsertUser(ctx context.Context, user *models.User) error {
	res, err := database.DB.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// UpdateUser merges only the supplied fields and refreshes updatedAt.
// It returns the post-update document.
func UpdateUser(ctx context.Context, id bson.ObjectID, updates bson.M) (*models.User, error) {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := database.DB.Collection(userCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).
		Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func DeleteUser(ctx context.Context, id bson.ObjectID) error {
	res, err := database.DB.Collection(userCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
