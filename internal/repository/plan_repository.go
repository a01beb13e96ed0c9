package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"meetspace-admin/database"
	"meetspace-admin/internal/models"
	"meetspace-admin/internal/utils"
)

const planCollection = "planDefinitions"

func ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "displayOrder", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := database.DB.Collection(planCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []models.SubscriptionPlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// planKeyFilter accepts either the generated id or the plan slug.
func planKeyFilter(key string) []bson.M {
	filters := []bson.M{}
	if utils.LooksLikeObjectID(key) {
		if oid, err := utils.Oid(key); err == nil {
			filters = append(filters, bson.M{"_id": oid})
		}
	}
	filters = append(filters, bson.M{"slug": key})
	return filters
}

func GetPlanByKey(ctx context.Context, key string) (*models.SubscriptionPlan, error) {
	collection := database.DB.Collection(planCollection)

	for _, filter := range planKeyFilter(key) {
		var plan models.SubscriptionPlan
		err := collection.FindOne(ctx, filter).Decode(&plan)
		if err == nil {
			return &plan, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}
	return nil, mongo.ErrNoDocuments
}

func PlanSlugExists(ctx context.Context, slug string) (bool, error) {
	err := database.DB.Collection(planCollection).
		FindOne(ctx, bson.M{"slug": slug}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func InsertPlan(ctx context.Context, doc bson.M) (bson.ObjectID, error) {
	res, err := database.DB.Collection(planCollection).InsertOne(ctx, doc)
	if err != nil {
		return bson.NilObjectID, err
	}
	oid, _ := res.InsertedID.(bson.ObjectID)
	return oid, nil
}

func UpdatePlanByKey(ctx context.Context, key string, updates bson.M) (*models.SubscriptionPlan, error) {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	collection := database.DB.Collection(planCollection)

	for _, filter := range planKeyFilter(key) {
		var plan models.SubscriptionPlan
		err := collection.
			FindOneAndUpdate(ctx, filter, bson.M{"$set": updates}, opts).
			Decode(&plan)
		if err == nil {
			return &plan, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}
	return nil, mongo.ErrNoDocuments
}

func DeletePlanByKey(ctx context.Context, key string) error {
	collection := database.DB.Collection(planCollection)

	for _, filter := range planKeyFilter(key) {
		res, err := collection.DeleteOne(ctx, filter)
		if err != nil {
			return err
		}
		if res.DeletedCount > 0 {
			return nil
		}
	}
	return mongo.ErrNoDocuments
}
