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

const eventCollection = "events"

// BuildEventFilter maps the list query onto a Mongo filter. Equality
// filters apply only when the parameter is present and non-empty; date
// bounds apply independently.
func BuildEventFilter(q dto.EventListQuery) bson.M {
	filter := bson.M{}

	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
			bson.M{"shortDescription": regex},
			bson.M{"tags": regex},
		}
	}

	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Visibility != "" {
		filter["visibility"] = q.Visibility
	}
	if q.SkillLevel != "" {
		filter["skillLevel"] = q.SkillLevel
	}
	if q.IsVirtual == "true" {
		filter["isVirtual"] = true
	}
	if q.IsVirtual == "false" {
		filter["isVirtual"] = false
	}
	if q.Featured == "true" {
		filter["isFeatured"] = true
	}

	if q.StartDate != "" || q.EndDate != "" {
		dateRange := bson.M{}
		if q.StartDate != "" {
			if t, err := time.Parse("2006-01-02", q.StartDate); err == nil {
				dateRange["$gte"] = t
			} else if t, err := time.Parse(time.RFC3339, q.StartDate); err == nil {
				dateRange["$gte"] = t
			}
		}
		if q.EndDate != "" {
			if t, err := time.Parse("2006-01-02", q.EndDate); err == nil {
				dateRange["$lte"] = t
			} else if t, err := time.Parse(time.RFC3339, q.EndDate); err == nil {
				dateRange["$lte"] = t
			}
		}
		if len(dateRange) > 0 {
			filter["date"] = dateRange
		}
	}

	if len(q.Tags) > 0 {
		filter["tags"] = bson.M{"$in": q.Tags}
	}

	return filter
}

var eventSortFields = map[string]string{
	"date":      "date",
	"title":     "title",
	"createdAt": "createdAt",
	"attendees": "attendees",
	"price":     "price",
}

// BuildEventSort resolves the requested sort plus fixed tiebreaks so
// ordering stays deterministic across pages.
func BuildEventSort(sortBy, sortOrder string) bson.D {
	field, ok := eventSortFields[sortBy]
	if !ok {
		field = "date"
	}
	order := 1
	if sortOrder == "desc" {
		order = -1
	}

	sort := bson.D{{Key: field, Value: order}}
	if field != "date" {
		sort = append(sort, bson.E{Key: "date", Value: 1})
	}
	if field != "createdAt" && field != "date" {
		sort = append(sort, bson.E{Key: "createdAt", Value: -1})
	}
	sort = append(sort, bson.E{Key: "_id", Value: 1})
	return sort
}

func ListEvents(ctx context.Context, q dto.EventListQuery) ([]models.Event, int64, error) {
	collection := database.DB.Collection(eventCollection)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := BuildEventFilter(q)

	opts := options.Find().
		SetSort(BuildEventSort(q.SortBy, q.SortOrder)).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, err
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func GetEventByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	var event models.Event
	err := database.DB.Collection(eventCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// InsertEvent stores the raw document so leniently-normalized date
// fields keep whatever shape normalization left them in.
func InsertEvent(ctx context.Context, doc bson.M) (bson.ObjectID, error) {
	res, err := database.DB.Collection(eventCollection).InsertOne(ctx, doc)
	if err != nil {
		return bson.NilObjectID, err
	}
	oid, _ := res.InsertedID.(bson.ObjectID)
	return oid, nil
}

func UpdateEvent(ctx context.Context, id bson.ObjectID, updates bson.M) (*models.Event, error) {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event models.Event
	err := database.DB.Collection(eventCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).
		Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func DeleteEvent(ctx context.Context, id bson.ObjectID) error {
	res, err := database.DB.Collection(eventCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

type statusCount struct {
	ID    interface{} `bson:"_id"`
	Count int64       `bson:"count"`
}

func groupCounts(ctx context.Context, field string) ([]statusCount, error) {
	cursor, err := database.DB.Collection(eventCollection).Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []statusCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetEventStats aggregates the dashboard counters in one pass.
func GetEventStats(ctx context.Context) (*dto.EventStats, error) {
	collection := database.DB.Collection(eventCollection)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now().UTC()
	stats := &dto.EventStats{
		ByStatus:     map[string]int64{},
		ByCategory:   map[string]int64{},
		VirtualSplit: map[string]int64{},
	}

	var err error
	if stats.TotalEvents, err = collection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	stats.UpcomingEvents, err = collection.CountDocuments(ctx, bson.M{
		"date":   bson.M{"$gt": now},
		"status": bson.M{"$nin": bson.A{"Cancelled", "Completed"}},
	})
	if err != nil {
		return nil, err
	}
	if stats.PastEvents, err = collection.CountDocuments(ctx, bson.M{"date": bson.M{"$lt": now}}); err != nil {
		return nil, err
	}
	if stats.FeaturedEvents, err = collection.CountDocuments(ctx, bson.M{"isFeatured": true}); err != nil {
		return nil, err
	}
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	if stats.RecentEvents, err = collection.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": thirtyDaysAgo}}); err != nil {
		return nil, err
	}

	statusRows, err := groupCounts(ctx, "status")
	if err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		if s, ok := row.ID.(string); ok {
			stats.ByStatus[s] = row.Count
		}
	}

	categoryRows, err := groupCounts(ctx, "category")
	if err != nil {
		return nil, err
	}
	for _, row := range categoryRows {
		if s, ok := row.ID.(string); ok {
			stats.ByCategory[s] = row.Count
		}
	}

	virtualRows, err := groupCounts(ctx, "isVirtual")
	if err != nil {
		return nil, err
	}
	for _, row := range virtualRows {
		if b, ok := row.ID.(bool); ok {
			if b {
				stats.VirtualSplit["virtual"] = row.Count
			} else {
				stats.VirtualSplit["inPerson"] = row.Count
			}
		}
	}

	attendeesCursor, err := collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$attendees"}}},
		}}},
	})
	if err != nil {
		return nil, err
	}
	var totals []struct {
		Total int64 `bson:"total"`
	}
	if err := attendeesCursor.All(ctx, &totals); err != nil {
		return nil, err
	}
	if len(totals) > 0 {
		stats.TotalAttendees = totals[0].Total
	}

	popularOpts := options.Find().
		SetSort(bson.D{{Key: "attendees", Value: -1}}).
		SetLimit(5)
	popularCursor, err := collection.Find(ctx, bson.M{}, popularOpts)
	if err != nil {
		return nil, err
	}
	var popular []models.Event
	if err := popularCursor.All(ctx, &popular); err != nil {
		return nil, err
	}
	for _, ev := range popular {
		stats.PopularEvents = append(stats.PopularEvents, dto.PopularEvent{
			Title:        ev.Title,
			Attendees:    ev.Attendees,
			MaxAttendees: ev.MaxAttendees,
			Date:         ev.Date,
			Category:     ev.Category,
		})
	}

	return stats, nil
}
