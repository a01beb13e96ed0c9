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

const subscriptionCollection = "subscriptions"

func BuildSubscriptionFilter(search, status, paymentStatus string) bson.M {
	filter := bson.M{}

	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"planId": regex},
			bson.M{"transactionRef": regex},
		}
	}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	if paymentStatus != "" && paymentStatus != "all" {
		filter["paymentStatus"] = paymentStatus
	}

	return filter
}

func ListSubscriptions(ctx context.Context, q dto.PageQuery, status, paymentStatus string) ([]models.Subscription, int64, error) {
	collection := database.DB.Collection(subscriptionCollection)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := BuildSubscriptionFilter(q.Search, status, paymentStatus)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	subscriptions := []models.Subscription{}
	if err := cursor.All(ctx, &subscriptions); err != nil {
		return nil, 0, err
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return subscriptions, total, nil
}

func GetSubscriptionByID(ctx context.Context, id bson.ObjectID) (*models.Subscription, error) {
	var sub models.Subscription
	err := database.DB.Collection(subscriptionCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func InsertSubscription(ctx context.Context, doc bson.M) (bson.ObjectID, error) {
	res, err := database.DB.Collection(subscriptionCollection).InsertOne(ctx, doc)
	if err != nil {
		return bson.NilObjectID, err
	}
	oid, _ := res.InsertedID.(bson.ObjectID)
	return oid, nil
}

func UpdateSubscription(ctx context.Context, id bson.ObjectID, updates bson.M) (*models.Subscription, error) {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var sub models.Subscription
	err := database.DB.Collection(subscriptionCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).
		Decode(&sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func DeleteSubscription(ctx context.Context, id bson.ObjectID) error {
	res, err := database.DB.Collection(subscriptionCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// LookupUsersByIDs bulk-fetches the referenced users so subscription
// listings can attach owner email and name. Missing users are simply
// absent from the map; the reference is weak.
func LookupUsersByIDs(ctx context.Context, ids []bson.ObjectID) (map[string]models.User, error) {
	if len(ids) == 0 {
		return map[string]models.User{}, nil
	}

	cursor, err := database.DB.Collection(userCollection).
		Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID.Hex()] = u
	}
	return byID, nil
}
