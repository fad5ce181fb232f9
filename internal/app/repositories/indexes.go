package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tahsin/scholarfolio/internal/db"
	"github.com/tahsin/scholarfolio/internal/pkg/logger"
)

// EnsureIndexes creates the collection indexes at startup. Index creation is
// idempotent; existing matching indexes are left alone.
func EnsureIndexes(ctx context.Context, database *db.Mongo) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		colProfiles: {
			{Keys: bson.D{{Key: "owner", Value: 1}}, Options: unique},
		},
		colAchievements: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		colResearchPapers: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "publishedDate", Value: -1}}},
		},
		colProjects: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "projectDate", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "projectDate", Value: -1}}},
			{Keys: bson.D{{Key: "featured", Value: 1}, {Key: "projectDate", Value: -1}}},
		},
		colCertificates: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "issueDate", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "issueDate", Value: -1}}},
			{Keys: bson.D{{Key: "featured", Value: 1}, {Key: "issueDate", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}

	logger.Info().Msg("Database indexes ensured")
	return nil
}
