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

// IProfileRepository defines the interface for profile database operations.
// The profile is a singleton per owner, created lazily by the first write.
type IProfileRepository interface {
	GetByOwner(ctx context.Context, owner string) (*models.Profile, error)
	UpsertFields(ctx context.Context, owner string, fields bson.M) (*models.Profile, error)
	PushContactMessage(ctx context.Context, owner string, msg models.ContactMessage) error
	PullContactMessage(ctx context.Context, owner string, id bson.ObjectID) error
}

// ProfileRepository persists the profile singleton.
type ProfileRepository struct {
	collection *mongo.Collection
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(database *db.Mongo) *ProfileRepository {
	return &ProfileRepository{collection: database.Collection(colProfiles)}
}

// GetByOwner retrieves the profile document for the given owner.
func (r *ProfileRepository) GetByOwner(ctx context.Context, owner string) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"owner": owner}).Decode(&profile)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpsertFields sets the given fields on the profile, creating the singleton
// when it does not exist yet, and returns the updated document.
func (r *ProfileRepository) UpsertFields(ctx context.Context, owner string, fields bson.M) (*models.Profile, error) {
	now := time.Now().UTC()
	set := bson.M{"updatedAt": now}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var profile models.Profile
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"owner": owner},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"owner": owner, "createdAt": now},
		}, opts).Decode(&profile)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return &profile, nil
}

// PushContactMessage appends a visitor message to the profile, creating the
// singleton when necessary.
func (r *ProfileRepository) PushContactMessage(ctx context.Context, owner string, msg models.ContactMessage) error {
	now := time.Now().UTC()
	opts := options.UpdateOne().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"owner": owner},
		bson.M{
			"$push":        bson.M{"contactMessages": msg},
			"$set":         bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{"owner": owner, "createdAt": now},
		}, opts)
	if err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}
	return nil
}

// PullContactMessage removes one message by its element id.
func (r *ProfileRepository) PullContactMessage(ctx context.Context, owner string, id bson.ObjectID) error {
	// The filter requires the element to exist so a zero match means the
	// message (or the profile itself) is gone.
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"owner": owner, "contactMessages._id": id},
		bson.M{
			"$pull": bson.M{"contactMessages": bson.M{"_id": id}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError("Message not found")
	}
	return nil
}
