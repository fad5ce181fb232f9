package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ResearchPaper is a publication entry. Exactly one PDF is attached; the
// create path rejects submissions without one.
type ResearchPaper struct {
	ID            bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Owner         string        `json:"owner" bson:"owner"`
	Title         string        `json:"title" bson:"title"`
	Description   string        `json:"description" bson:"description"`
	PdfFile       MediaAsset    `json:"pdfFile" bson:"pdfFile"`
	PublishedDate time.Time     `json:"publishedDate" bson:"publishedDate"`
	Publisher     string        `json:"publisher" bson:"publisher" example:"IEEE"`
	Authors       []string      `json:"authors" bson:"authors"`
	DOI           string        `json:"doi" bson:"doi" example:"10.1109/5.771073"`
	Tags          []string      `json:"tags" bson:"tags"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
}
