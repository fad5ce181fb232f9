package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Achievement categories.
const (
	AchievementCategoryAcademic    = "academic"
	AchievementCategorySports      = "sports"
	AchievementCategoryCultural    = "cultural"
	AchievementCategoryCompetition = "competition"
	AchievementCategoryOther       = "other"
)

// AchievementCategories is the closed set of valid achievement categories.
var AchievementCategories = []string{
	AchievementCategoryAcademic,
	AchievementCategorySports,
	AchievementCategoryCultural,
	AchievementCategoryCompetition,
	AchievementCategoryOther,
}

// Achievement is an award or recognition entry. Title, description, date,
// place and event are required; the photo is optional.
type Achievement struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Owner       string        `json:"owner" bson:"owner"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Photo       MediaAsset    `json:"photo" bson:"photo"`
	Date        time.Time     `json:"date" bson:"date"`
	Place       string        `json:"place" bson:"place" example:"Dhaka, Bangladesh"`
	Event       string        `json:"event" bson:"event" example:"National Hackathon 2024"`
	Position    string        `json:"position" bson:"position" example:"1st Place"`
	Category    string        `json:"category" bson:"category" example:"competition"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}
