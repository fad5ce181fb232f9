package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
	"github.com/tahsin/scholarfolio/internal/pkg/logger"
	"github.com/tahsin/scholarfolio/internal/pkg/mediastore"
)

// Services defined in this package:
// - AuthService: login, logout bookkeeping and the caller's own identity
// - ProfileService: the profile singleton and its sub-resources
// - AchievementService, ResearchService, ProjectService, CertificateService:
//   CRUD over the content collections plus their media handling

var dateFormats = []string{time.RFC3339, "2006-01-02", "2006-01"}

// parseObjectID converts a hex path parameter into an ObjectID.
func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, apperrors.NewCustomError(apperrors.ErrInvalidID, "Invalid id format")
	}
	return oid, nil
}

// parseDate accepts the date strings the forms submit.
func parseDate(value, field string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("Invalid " + field + " date format")
}

// applyRequired overwrites dst only when the request carries a non-empty
// value. Required fields can never be emptied through an update.
func applyRequired(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// applyOptional overwrites dst whenever the field is present, so an explicit
// empty string clears an optional field.
func applyOptional(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// removeAssetQuietly deletes a stored object, logging instead of failing;
// media cleanup never blocks a document operation.
func removeAssetQuietly(ctx context.Context, store mediastore.Store, publicID string) {
	if publicID == "" {
		return
	}
	if err := store.Remove(ctx, publicID); err != nil {
		logger.Warn().Err(err).Str("publicId", publicID).Msg("Failed to remove media asset")
	}
}
