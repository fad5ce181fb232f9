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

// IProjectRepository defines the interface for project database operations.
type IProjectRepository interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Project, error)
	List(ctx context.Context, owner string, filter ContentFilter) ([]models.Project, int64, error)
	Update(ctx context.Context, project *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// ProjectRepository persists projects.
type ProjectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(database *db.Mongo) *ProjectRepository {
	return &ProjectRepository{collection: database.Collection(colProjects)}
}

// Create inserts a new project and returns it with the generated id.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	now := time.Now().UTC()
	project.ID = bson.NewObjectID()
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// GetByID retrieves a project by ID, including the detailed description.
func (r *ProjectRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// List returns one page of projects plus the total count matching the
// filter. The detailed description is left out of list views.
func (r *ProjectRepository) List(ctx context.Context, owner string, filter ContentFilter) ([]models.Project, int64, error) {
	query := bson.M{"owner": owner}
	if filter.Category != "" && filter.Category != "all" {
		query["category"] = filter.Category
	}
	if filter.FeaturedOnly {
		query["featured"] = true
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "projectDate", Value: -1}}).
		SetProjection(bson.M{"detailedDescription": 0}).
		SetSkip(filter.Skip)
	if filter.Limit > 0 {
		opts = opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, 0, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, total, nil
}

// Update replaces the stored document and returns the updated copy.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	project.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrProjectNotFound
	}
	return project, nil
}

// Delete removes a project by ID
func (r *ProjectRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}
