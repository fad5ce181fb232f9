package dto

import "github.com/tahsin/scholarfolio/internal/app/models"

// CreateProjectRequest carries the multipart form fields of a new project.
// TeamMembers is sent as a JSON-encoded string and decoded by the
// controller; image files arrive as `images` parts.
type CreateProjectRequest struct {
	Title               string              `form:"title" json:"title"`
	Description         string              `form:"description" json:"description"`
	DetailedDescription string              `form:"detailedDescription" json:"detailedDescription"`
	Technologies        []string            `form:"technologies" json:"technologies"`
	Category            string              `form:"category" json:"category"`
	ProjectDate         string              `form:"projectDate" json:"projectDate" example:"2024-01-20"`
	TeamMembers         []models.TeamMember `form:"-" json:"teamMembers"`
	GithubLink          string              `form:"githubLink" json:"githubLink"`
	LiveDemoLink        string              `form:"liveDemoLink" json:"liveDemoLink"`
	Featured            bool                `form:"featured" json:"featured"`
}

// UpdateProjectRequest uses pointer fields for presence detection.
// ExistingImages is the surviving subset of the stored images, decoded from
// the `existingImages` JSON form field; nil keeps the whole stored set.
type UpdateProjectRequest struct {
	Title               *string              `form:"title" json:"title"`
	Description         *string              `form:"description" json:"description"`
	DetailedDescription *string              `form:"detailedDescription" json:"detailedDescription"`
	Technologies        []string             `form:"technologies" json:"technologies"`
	Category            *string              `form:"category" json:"category"`
	ProjectDate         *string              `form:"projectDate" json:"projectDate"`
	TeamMembers         *[]models.TeamMember `form:"-" json:"teamMembers"`
	GithubLink          *string              `form:"githubLink" json:"githubLink"`
	LiveDemoLink        *string              `form:"liveDemoLink" json:"liveDemoLink"`
	Featured            *bool                `form:"featured" json:"featured"`
	ExistingImages      *[]models.MediaImage `form:"-" json:"existingImages"`
}
