package dberrors

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// IsNotFound checks if the error means no document matched the filter.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// IsDuplicateKeyError checks if the error is a MongoDB unique index
// violation (error code 11000).
func IsDuplicateKeyError(err error) bool {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == 11000 {
				return true
			}
		}
	}
	var cmdErr mongo.CommandError
	return errors.As(err, &cmdErr) && cmdErr.Code == 11000
}
