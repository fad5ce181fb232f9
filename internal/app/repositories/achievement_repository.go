package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/db"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
	"github.com/tahsin/scholarfolio/internal/pkg/dberrors"
)

// IAchievementRepository defines the interface for achievement database
// operations.
type IAchievementRepository interface {
	Create(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Achievement, error)
	List(ctx context.Context, owner string) ([]models.Achievement, error)
	Update(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// AchievementRepository persists achievements.
type AchievementRepository struct {
	collection *mongo.Collection
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(database *db.Mongo) *AchievementRepository {
	return &AchievementRepository{collection: database.Collection(colAchievements)}
}

// Create inserts a new achievement and returns it with the generated id.
func (r *AchievementRepository) Create(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error) {
	now := time.Now().UTC()
	achievement.ID = bson.NewObjectID()
	achievement.CreatedAt = now
	achievement.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, achievement); err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}
	return achievement, nil
}

// GetByID retrieves an achievement by ID
func (r *AchievementRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Achievement, error) {
	var achievement models.Achievement
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&achievement)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}
	return &achievement, nil
}

// List returns all achievements for the owner, newest date first.
func (r *AchievementRepository) List(ctx context.Context, owner string) ([]models.Achievement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	achievements := []models.Achievement{}
	if err := cursor.All(ctx, &achievements); err != nil {
		return nil, fmt.Errorf("failed to decode achievements: %w", err)
	}
	return achievements, nil
}

// Update replaces the stored document and returns the updated copy.
func (r *AchievementRepository) Update(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error) {
	achievement.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": achievement.ID}, achievement)
	if err != nil {
		return nil, fmt.Errorf("failed to update achievement: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrAchievementNotFound
	}
	return achievement, nil
}

// Delete removes an achievement by ID
func (r *AchievementRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrAchievementNotFound
	}
	return nil
}
