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

// IResearchRepository defines the interface for research paper database
// operations.
type IResearchRepository interface {
	Create(ctx context.Context, paper *models.ResearchPaper) (*models.ResearchPaper, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*models.ResearchPaper, error)
	List(ctx context.Context, owner string) ([]models.ResearchPaper, error)
	Update(ctx context.Context, paper *models.ResearchPaper) (*models.ResearchPaper, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// ResearchRepository persists research papers.
type ResearchRepository struct {
	collection *mongo.Collection
}

// NewResearchRepository creates a new ResearchRepository
func NewResearchRepository(database *db.Mongo) *ResearchRepository {
	return &ResearchRepository{collection: database.Collection(colResearchPapers)}
}

// Create inserts a new research paper and returns it with the generated id.
func (r *ResearchRepository) Create(ctx context.Context, paper *models.ResearchPaper) (*models.ResearchPaper, error) {
	now := time.Now().UTC()
	paper.ID = bson.NewObjectID()
	paper.CreatedAt = now
	paper.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, paper); err != nil {
		return nil, fmt.Errorf("failed to create research paper: %w", err)
	}
	return paper, nil
}

// GetByID retrieves a research paper by ID
func (r *ResearchRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.ResearchPaper, error) {
	var paper models.ResearchPaper
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&paper)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrResearchNotFound
		}
		return nil, fmt.Errorf("failed to get research paper: %w", err)
	}
	return &paper, nil
}

// List returns all research papers for the owner, newest publication first.
func (r *ResearchRepository) List(ctx context.Context, owner string) ([]models.ResearchPaper, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list research papers: %w", err)
	}

	papers := []models.ResearchPaper{}
	if err := cursor.All(ctx, &papers); err != nil {
		return nil, fmt.Errorf("failed to decode research papers: %w", err)
	}
	return papers, nil
}

// Update replaces the stored document and returns the updated copy.
func (r *ResearchRepository) Update(ctx context.Context, paper *models.ResearchPaper) (*models.ResearchPaper, error) {
	paper.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": paper.ID}, paper)
	if err != nil {
		return nil, fmt.Errorf("failed to update research paper: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrResearchNotFound
	}
	return paper, nil
}

// Delete removes a research paper by ID
func (r *ResearchRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete research paper: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrResearchNotFound
	}
	return nil
}
