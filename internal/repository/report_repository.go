package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"meetspace-admin/database"
)

// PeriodRange resolves a report period keyword into concrete bounds.
// Unknown keywords fall back to the trailing 30 days.
func PeriodRange(period string, now time.Time) (time.Time, time.Time) {
	end := now
	var start time.Time

	switch period {
	case "7days":
		start = now.AddDate(0, 0, -7)
	case "30days":
		start = now.AddDate(0, 0, -30)
	case "90days":
		start = now.AddDate(0, 0, -90)
	case "thisMonth":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "lastMonth":
		start = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Add(-time.Second)
	case "thisYear":
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		start = now.AddDate(0, 0, -30)
	}

	return start, end
}

type TrendPoint struct {
	Date  string  `bson:"_id" json:"date"`
	Count int64   `bson:"count" json:"count"`
	Sum   float64 `bson:"sum,omitempty" json:"sum,omitempty"`
}

// dailyTrend groups documents by calendar day of the given date field.
func dailyTrend(ctx context.Context, collection string, dateField string, start, end time.Time, sumField string) ([]TrendPoint, error) {
	group := bson.D{
		{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
			{Key: "format", Value: "%Y-%m-%d"},
			{Key: "date", Value: "$" + dateField},
		}}}},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}
	if sumField != "" {
		group = append(group, bson.E{Key: "sum", Value: bson.D{{Key: "$sum", Value: "$" + sumField}}})
	}

	cursor, err := database.DB.Collection(collection).Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: dateField, Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lte", Value: end}}},
		}}},
		bson.D{{Key: "$group", Value: group}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	points := []TrendPoint{}
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}
	return points, nil
}

type UserReport struct {
	Period            string       `json:"period"`
	TotalUsers        int64        `json:"totalUsers"`
	NewUsers          int64        `json:"newUsers"`
	ActiveUsers       int64        `json:"activeUsers"`
	RegistrationTrend []TrendPoint `json:"registrationTrend"`
}

func GetUserReport(ctx context.Context, period string) (*UserReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	start, end := PeriodRange(period, time.Now().UTC())
	collection := database.DB.Collection(userCollection)

	report := &UserReport{Period: period}

	var err error
	if report.TotalUsers, err = collection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	report.NewUsers, err = collection.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return nil, err
	}
	report.ActiveUsers, err = collection.CountDocuments(ctx, bson.M{
		"isActive": bson.M{"$ne": false},
	})
	if err != nil {
		return nil, err
	}

	if report.RegistrationTrend, err = dailyTrend(ctx, userCollection, "createdAt", start, end, ""); err != nil {
		return nil, err
	}

	return report, nil
}

type EventReport struct {
	Period        string           `json:"period"`
	TotalEvents   int64            `json:"totalEvents"`
	NewEvents     int64            `json:"newEvents"`
	ByCategory    map[string]int64 `json:"byCategory"`
	CreationTrend []TrendPoint     `json:"creationTrend"`
}

func GetEventReport(ctx context.Context, period string) (*EventReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	start, end := PeriodRange(period, time.Now().UTC())
	collection := database.DB.Collection(eventCollection)

	report := &EventReport{Period: period, ByCategory: map[string]int64{}}

	var err error
	if report.TotalEvents, err = collection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	report.NewEvents, err = collection.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return nil, err
	}

	categoryRows, err := groupCounts(ctx, "category")
	if err != nil {
		return nil, err
	}
	for _, row := range categoryRows {
		if s, ok := row.ID.(string); ok {
			report.ByCategory[s] = row.Count
		}
	}

	if report.CreationTrend, err = dailyTrend(ctx, eventCollection, "createdAt", start, end, ""); err != nil {
		return nil, err
	}

	return report, nil
}

type PaymentReport struct {
	Period       string           `json:"period"`
	TotalVolume  float64          `json:"totalVolume"`
	Transactions int64            `json:"transactions"`
	StatusCounts map[string]int64 `json:"statusCounts"`
	RevenueTrend []TrendPoint     `json:"revenueTrend"`
}

func GetPaymentReport(ctx context.Context, period string) (*PaymentReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	start, end := PeriodRange(period, time.Now().UTC())
	collection := database.DB.Collection(paymentCollection)

	report := &PaymentReport{Period: period, StatusCounts: map[string]int64{}}

	inPeriod := bson.M{"payment_date": bson.M{"$gte": start, "$lte": end}}

	var err error
	if report.Transactions, err = collection.CountDocuments(ctx, inPeriod); err != nil {
		return nil, err
	}

	cursor, err := collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "status", Value: "success"},
			{Key: "payment_date", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lte", Value: end}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	})
	if err != nil {
		return nil, err
	}
	var totals []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}
	if len(totals) > 0 {
		report.TotalVolume = totals[0].Total
	}

	for _, status := range []string{"success", "pending", "failed"} {
		count, err := collection.CountDocuments(ctx, bson.M{
			"status":       status,
			"payment_date": bson.M{"$gte": start, "$lte": end},
		})
		if err != nil {
			return nil, err
		}
		report.StatusCounts[status] = count
	}

	if report.RevenueTrend, err = dailyTrend(ctx, paymentCollection, "payment_date", start, end, "amount"); err != nil {
		return nil, err
	}

	return report, nil
}
