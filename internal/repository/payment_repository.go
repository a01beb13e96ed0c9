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
	"meetspace-admin/internal/utils"
)

const paymentCollection = "payments"

// BuildPaymentFilter combines the status equality filter with free-text
// search over the payment string fields. A status of "all" is absent.
func BuildPaymentFilter(search, status string) bson.M {
	filter := bson.M{}

	if status != "" && status != "all" {
		filter["status"] = status
	}

	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"tx_ref": regex},
			bson.M{"email": regex},
			bson.M{"first_name": regex},
			bson.M{"last_name": regex},
		}
	}

	return filter
}

func ListPayments(ctx context.Context, q dto.PageQuery, status string) ([]models.Payment, int64, error) {
	collection := database.DB.Collection(paymentCollection)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := BuildPaymentFilter(q.Search, status)

	opts := options.Find().
		SetSort(bson.D{{Key: "payment_date", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, 0, err
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// paymentKeyFilter resolves an id-or-tx_ref route parameter into a
// filter, trying _id only when the value has ObjectID shape.
func paymentKeyFilter(key string) []bson.M {
	filters := []bson.M{}
	if utils.LooksLikeObjectID(key) {
		if oid, err := utils.Oid(key); err == nil {
			filters = append(filters, bson.M{"_id": oid})
		}
	}
	filters = append(filters, bson.M{"tx_ref": key})
	return filters
}

// GetPaymentByKey finds a payment by generated id or tx_ref.
func GetPaymentByKey(ctx context.Context, key string) (*models.Payment, error) {
	collection := database.DB.Collection(paymentCollection)

	for _, filter := range paymentKeyFilter(key) {
		var payment models.Payment
		err := collection.FindOne(ctx, filter).Decode(&payment)
		if err == nil {
			return &payment, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}
	return nil, mongo.ErrNoDocuments
}

func TxRefExists(ctx context.Context, txRef string) (bool, error) {
	err := database.DB.Collection(paymentCollection).
		FindOne(ctx, bson.M{"tx_ref": txRef}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func InsertPayment(ctx context.Context, payment *models.Payment) error {
	res, err := database.DB.Collection(paymentCollection).InsertOne(ctx, payment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		payment.ID = oid
	}
	return nil
}

func UpdatePaymentByKey(ctx context.Context, key string, updates bson.M) (*models.Payment, error) {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	collection := database.DB.Collection(paymentCollection)

	for _, filter := range paymentKeyFilter(key) {
		var payment models.Payment
		err := collection.
			FindOneAndUpdate(ctx, filter, bson.M{"$set": updates}, opts).
			Decode(&payment)
		if err == nil {
			return &payment, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}
	return nil, mongo.ErrNoDocuments
}

func DeletePaymentByKey(ctx context.Context, key string) error {
	collection := database.DB.Collection(paymentCollection)

	for _, filter := range paymentKeyFilter(key) {
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

// scopedStatusFilter copies filter and pins it to one status, so the
// caller's search and date constraints carry into every metric.
func scopedStatusFilter(filter bson.M, status string) bson.M {
	scoped := bson.M{}
	for k, v := range filter {
		scoped[k] = v
	}
	scoped["status"] = status
	return scoped
}

// GetPaymentMetrics returns total successful revenue plus per-status
// counts scoped to the current filter.
func GetPaymentMetrics(ctx context.Context, filter bson.M) (*dto.PaymentMetrics, error) {
	collection := database.DB.Collection(paymentCollection)

	cursor, err := collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: scopedStatusFilter(filter, models.PaymentSuccess)}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	})
	if err != nil {
		return nil, err
	}
	var revenue []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &revenue); err != nil {
		return nil, err
	}

	metrics := &dto.PaymentMetrics{StatusCounts: map[string]int64{}}
	if len(revenue) > 0 {
		metrics.TotalRevenue = revenue[0].Total
	}

	for _, status := range []string{models.PaymentSuccess, models.PaymentPending, models.PaymentFailed} {
		count, err := collection.CountDocuments(ctx, scopedStatusFilter(filter, status))
		if err != nil {
			return nil, err
		}
		metrics.StatusCounts[status] = count
	}

	return metrics, nil
}
