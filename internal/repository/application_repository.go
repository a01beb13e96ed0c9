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

const applicationCollection = "organizer_applications"

func BuildApplicationFilter(search, status string) bson.M {
	filter := bson.M{}

	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"fullName": regex},
			bson.M{"email": regex},
			bson.M{"organization": regex},
			bson.M{"university": regex},
		}
	}

	switch status {
	case models.ApplicationPending, models.ApplicationAccepted, models.ApplicationRejected:
		filter["status"] = status
	}

	return filter
}

func ListApplications(ctx context.Context, q dto.PageQuery, status string) ([]models.OrganizerApplication, int64, error) {
	collection := database.DB.Collection(applicationCollection)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := BuildApplicationFilter(q.Search, status)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	applications := []models.OrganizerApplication{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, 0, err
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

func GetApplicationByID(ctx context.Context, id bson.ObjectID) (*models.OrganizerApplication, error) {
	var app models.OrganizerApplication
	err := database.DB.Collection(applicationCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func FindApplicationByEmail(ctx context.Context, email string) (*models.OrganizerApplication, error) {
	var app models.OrganizerApplication
	err := database.DB.Collection(applicationCollection).
		FindOne(ctx, bson.M{"email": email},
			options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})).
		Decode(&app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func InsertApplication(ctx context.Context, doc bson.M) (bson.ObjectID, error) {
	res, err := database.DB.Collection(applicationCollection).InsertOne(ctx, doc)
	if err != nil {
		return bson.NilObjectID, err
	}
	oid, _ := res.InsertedID.(bson.ObjectID)
	return oid, nil
}

func UpdateApplication(ctx context.Context, id bson.ObjectID, updates bson.M) (*models.OrganizerApplication, error) {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var app models.OrganizerApplication
	err := database.DB.Collection(applicationCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).
		Decode(&app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func DeleteApplication(ctx context.Context, id bson.ObjectID) error {
	res, err := database.DB.Collection(applicationCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// FindApplicationsByMediaFilename matches either stored media URL field
// against the filename, for the media resolution chain.
func FindApplicationsByMediaFilename(ctx context.Context, filename string) ([]models.OrganizerApplication, error) {
	regex := bson.M{"$regex": filename, "$options": "i"}

	cursor, err := database.DB.Collection(applicationCollection).Find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"profilePhotoUrl": regex},
			bson.M{"idDocumentUrl": regex},
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	apps := []models.OrganizerApplication{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// GetApplicationStats counts applications by review status plus today's
// intake.
func GetApplicationStats(ctx context.Context) (*dto.ApplicationStats, error) {
	collection := database.DB.Collection(applicationCollection)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stats := &dto.ApplicationStats{}

	var err error
	if stats.Total, err = collection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.Pending, err = collection.CountDocuments(ctx, bson.M{"status": models.ApplicationPending}); err != nil {
		return nil, err
	}
	if stats.Approved, err = collection.CountDocuments(ctx, bson.M{"status": models.ApplicationAccepted}); err != nil {
		return nil, err
	}
	if stats.Rejected, err = collection.CountDocuments(ctx, bson.M{"status": models.ApplicationRejected}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if stats.Today, err = collection.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": midnight}}); err != nil {
		return nil, err
	}

	return stats, nil
}
