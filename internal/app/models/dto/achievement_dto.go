package dto

// CreateAchievementRequest carries the multipart form fields of a new
// achievement. The photo arrives as a separate file part.
type CreateAchievementRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Date        string `form:"date" json:"date" example:"2024-06-01"`
	Place       string `form:"place" json:"place"`
	Event       string `form:"event" json:"event"`
	Position    string `form:"position" json:"position"`
	Category    string `form:"category" json:"category"`
}

// UpdateAchievementRequest uses pointer fields so an absent field keeps the
// stored value.
type UpdateAchievementRequest struct {
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
	Date        *string `form:"date" json:"date"`
	Place       *string `form:"place" json:"place"`
	Event       *string `form:"event" json:"event"`
	Position    *string `form:"position" json:"position"`
	Category    *string `form:"category" json:"category"`
}
