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

// ICertificateRepository defines the interface for certificate database
// operations.
type ICertificateRepository interface {
	Create(ctx context.Context, certificate *models.Certificate) (*models.Certificate, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Certificate, error)
	List(ctx context.Context, owner string, filter ContentFilter) ([]models.Certificate, int64, error)
	Update(ctx context.Context, certificate *models.Certificate) (*models.Certificate, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// CertificateRepository persists certificates.
type CertificateRepository struct {
	collection *mongo.Collection
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(database *db.Mongo) *CertificateRepository {
	return &CertificateRepository{collection: database.Collection(colCertificates)}
}

// Create inserts a new certificate and returns it with the generated id.
func (r *CertificateRepository) Create(ctx context.Context, certificate *models.Certificate) (*models.Certificate, error) {
	now := time.Now().UTC()
	certificate.ID = bson.NewObjectID()
	certificate.CreatedAt = now
	certificate.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, certificate); err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}
	return certificate, nil
}

// GetByID retrieves a certificate by ID
func (r *CertificateRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Certificate, error) {
	var certificate models.Certificate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&certificate)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return &certificate, nil
}

// List returns one page of certificates plus the total count matching the
// filter, newest issue date first.
func (r *CertificateRepository) List(ctx context.Context, owner string, filter ContentFilter) ([]models.Certificate, int64, error) {
	query := bson.M{"owner": owner}
	if filter.Category != "" && filter.Category != "all" {
		query["category"] = filter.Category
	}
	if filter.FeaturedOnly {
		query["featured"] = true
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count certificates: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "issueDate", Value: -1}}).
		SetSkip(filter.Skip)
	if filter.Limit > 0 {
		opts = opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list certificates: %w", err)
	}

	certificates := []models.Certificate{}
	if err := cursor.All(ctx, &certificates); err != nil {
		return nil, 0, fmt.Errorf("failed to decode certificates: %w", err)
	}
	return certificates, total, nil
}

// Update replaces the stored document and returns the updated copy.
func (r *CertificateRepository) Update(ctx context.Context, certificate *models.Certificate) (*models.Certificate, error) {
	certificate.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": certificate.ID}, certificate)
	if err != nil {
		return nil, fmt.Errorf("failed to update certificate: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrCertificateNotFound
	}
	return certificate, nil
}

// Delete removes a certificate by ID
func (r *CertificateRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrCertificateNotFound
	}
	return nil
}
