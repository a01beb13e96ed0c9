// Seeds the database with representative documents for local
// development. Safe to re-run: collections are emptied first.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"meetspace-admin/bootstrap"
	"meetspace-admin/config"
	"meetspace-admin/database"
	"meetspace-admin/internal/logx"
	"meetspace-admin/internal/models"
)

var seedCollections = []string{
	"user", "role", "events", "payments", "organizer_applications",
	"subscriptions", "planDefinitions", "admin_users", "super_admin_users",
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}
	return string(hash)
}

func main() {
	cfg := config.LoadConfig()
	logx.Setup(cfg.Environment)

	client, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer client.Disconnect(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, name := range seedCollections {
		if _, err := database.DB.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to empty collection")
		}
	}

	if err := bootstrap.EnsureIndexes(database.DB); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	now := time.Now().UTC()
	active := true

	users := make([]interface{}, 0, 12)
	emails := make([]string, 0, 12)
	for i := 1; i <= 12; i++ {
		email := fmt.Sprintf("user%02d@meetspace.dev", i)
		emails = append(emails, email)
		users = append(users, models.User{
			Name:         fmt.Sprintf("Seed User %02d", i),
			Email:        email,
			Password:     mustHash("password123"),
			Role:         models.RoleUser,
			IsActive:     &active,
			LoginHistory: []models.LoginEntry{},
			CreatedAt:    now.AddDate(0, 0, -i),
			UpdatedAt:    now.AddDate(0, 0, -i),
		})
	}
	userRes, err := database.DB.Collection("user").InsertMany(ctx, users)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed users")
	}

	roles := []interface{}{
		models.Role{
			Name: "Seed Admin", Email: "admin@meetspace.dev",
			Password: mustHash("admin12345"), Role: models.RoleAdmin,
			IsActive: &active, RequirePasswordChange: true,
			University: "Central University",
			CreatedAt:  now, UpdatedAt: now,
		},
		models.Role{
			Name: "Seed Super Admin", Email: "super@meetspace.dev",
			Password: mustHash("super12345"), Role: models.RoleSuperAdmin,
			IsActive: &active, RequirePasswordChange: true,
			CreatedAt: now, UpdatedAt: now,
		},
		// Overrides user01's baseline role at read time.
		models.Role{
			Name: "Seed User 01", Email: emails[0],
			Role: models.RoleOrganizer, IsActive: &active,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	if _, err := database.DB.Collection("role").InsertMany(ctx, roles); err != nil {
		log.Fatal().Err(err).Msg("failed to seed roles")
	}

	categories := []string{"Conference", "Workshop", "Meetup", "Webinar"}
	statuses := []string{"Published", "Published", "Draft", "Completed"}
	events := make([]interface{}, 0, 8)
	for i := 0; i < 8; i++ {
		events = append(events, bson.M{
			"title":       fmt.Sprintf("Seed Event %d", i+1),
			"description": "A seeded event for local development.",
			"category":    categories[i%len(categories)],
			"date":        now.AddDate(0, 0, 7*(i-4)),
			"status":      statuses[i%len(statuses)],
			"isVirtual":   i%2 == 0,
			"price":       float64(10 * i),
			"attendees":   5 * i,
			"isFeatured":  i < 2,
			"tags":        []string{"seed", categories[i%len(categories)]},
			"createdAt":   now.AddDate(0, 0, -i),
			"updatedAt":   now.AddDate(0, 0, -i),
		})
	}
	if _, err := database.DB.Collection("events").InsertMany(ctx, events); err != nil {
		log.Fatal().Err(err).Msg("failed to seed events")
	}

	payStatuses := []string{models.PaymentSuccess, models.PaymentSuccess, models.PaymentPending, models.PaymentFailed}
	payments := make([]interface{}, 0, 10)
	for i := 0; i < 10; i++ {
		when := now.AddDate(0, 0, -i)
		payments = append(payments, models.Payment{
			TxRef:       "tx-" + uuid.NewString(),
			Amount:      float64(20 + 5*i),
			Currency:    "USD",
			Email:       emails[i%len(emails)],
			FirstName:   "Seed",
			LastName:    fmt.Sprintf("User %02d", i+1),
			Status:      payStatuses[i%len(payStatuses)],
			PaymentDate: &when,
			CreatedAt:   when,
			UpdatedAt:   when,
		})
	}
	if _, err := database.DB.Collection("payments").InsertMany(ctx, payments); err != nil {
		log.Fatal().Err(err).Msg("failed to seed payments")
	}

	appStatuses := []string{models.ApplicationPending, models.ApplicationAccepted, models.ApplicationRejected}
	applications := make([]interface{}, 0, 6)
	for i := 0; i < 6; i++ {
		doc := bson.M{
			"fullName":     fmt.Sprintf("Applicant %d", i+1),
			"email":        fmt.Sprintf("applicant%d@meetspace.dev", i+1),
			"organization": "Seed Org",
			"experience":   "Organized campus meetups for two years.",
			"reason":       "Wants to host events on the platform.",
			"university":   "Central University",
			"status":       appStatuses[i%len(appStatuses)],
			"createdAt":    now.AddDate(0, 0, -i),
			"updatedAt":    now.AddDate(0, 0, -i),
		}
		if doc["status"] == models.ApplicationRejected {
			doc["feedback"] = "Application did not meet the requirements."
		}
		applications = append(applications, doc)
	}
	if _, err := database.DB.Collection("organizer_applications").InsertMany(ctx, applications); err != nil {
		log.Fatal().Err(err).Msg("failed to seed applications")
	}

	plans := []interface{}{
		bson.M{
			"name": "Free", "slug": "free", "price": 0.0, "durationDays": 36500,
			"description": "Basic access.", "isActive": true, "displayOrder": 1,
			"createdAt": now, "updatedAt": now,
		},
		bson.M{
			"name": "Pro", "slug": "pro", "price": 19.99, "durationDays": 30,
			"description": "Full organizer toolkit.", "isActive": true, "displayOrder": 2,
			"createdAt": now, "updatedAt": now,
		},
		bson.M{
			"name": "Campus", "slug": "campus", "price": 99.0, "durationDays": 365,
			"description": "University-wide license.", "isActive": false, "displayOrder": 3,
			"createdAt": now, "updatedAt": now,
		},
	}
	if _, err := database.DB.Collection("planDefinitions").InsertMany(ctx, plans); err != nil {
		log.Fatal().Err(err).Msg("failed to seed plans")
	}

	subs := make([]interface{}, 0, 5)
	for i := 0; i < 5; i++ {
		uid, _ := userRes.InsertedIDs[i].(bson.ObjectID)
		subs = append(subs, bson.M{
			"userId":         uid,
			"planId":         "pro",
			"status":         "active",
			"paymentStatus":  "paid",
			"startDate":      now.AddDate(0, -1, 0),
			"endDate":        now.AddDate(0, 1, 0),
			"amount":         19.99,
			"currency":       "USD",
			"transactionRef": "tx-" + uuid.NewString(),
			"createdAt":      now.AddDate(0, 0, -i),
			"updatedAt":      now.AddDate(0, 0, -i),
		})
	}
	if _, err := database.DB.Collection("subscriptions").InsertMany(ctx, subs); err != nil {
		log.Fatal().Err(err).Msg("failed to seed subscriptions")
	}

	admins := []interface{}{
		models.AdminUser{
			Name: "Campus Admin", Email: "campus-admin@meetspace.dev",
			PasswordHash: mustHash("admin12345"), Role: models.RoleAdmin,
			University: "Central University", Status: models.AccountActive,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	if _, err := database.DB.Collection("admin_users").InsertMany(ctx, admins); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin accounts")
	}

	superAdmins := []interface{}{
		models.SuperAdminUser{
			Name: "Root", Email: "root@meetspace.dev",
			PasswordHash: mustHash("root12345"), Role: models.RoleSuperAdmin,
			Status: models.AccountActive, CreatedAt: now, UpdatedAt: now,
		},
	}
	if _, err := database.DB.Collection("super_admin_users").InsertMany(ctx, superAdmins); err != nil {
		log.Fatal().Err(err).Msg("failed to seed super admin accounts")
	}

	log.Info().Msg("database seeded")
}
