package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Project categories.
const (
	ProjectCategoryUndergraduate = "Undergraduate"
	ProjectCategoryPersonal      = "personal"
	ProjectCategoryProfessional  = "professional"
	ProjectCategoryResearch      = "research"
	ProjectCategoryOther         = "other"
)

// ProjectCategories is the closed set of valid project categories. The mixed
// casing is deliberate; it matches the stored documents.
var ProjectCategories = []string{
	ProjectCategoryUndergraduate,
	ProjectCategoryPersonal,
	ProjectCategoryProfessional,
	ProjectCategoryResearch,
	ProjectCategoryOther,
}

// MaxProjectImages caps the images array per project.
const MaxProjectImages = 10

// TeamMember is a collaborator on a project.
type TeamMember struct {
	Name string `json:"name" bson:"name"`
	Role string `json:"role" bson:"role"`
}

// Project is a portfolio project. DetailedDescription is large and omitted
// from list views; GetByID returns it.
type Project struct {
	ID                  bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Owner               string        `json:"owner" bson:"owner"`
	Title               string        `json:"title" bson:"title"`
	Description         string        `json:"description" bson:"description"`
	DetailedDescription string        `json:"detailedDescription,omitempty" bson:"detailedDescription,omitempty"`
	Technologies        []string      `json:"technologies" bson:"technologies"`
	Category            string        `json:"category" bson:"category" example:"research"`
	ProjectDate         time.Time     `json:"projectDate" bson:"projectDate"`
	TeamMembers         []TeamMember  `json:"teamMembers" bson:"teamMembers"`
	GithubLink          string        `json:"githubLink" bson:"githubLink"`
	LiveDemoLink        string        `json:"liveDemoLink" bson:"liveDemoLink"`
	Images              []MediaImage  `json:"images" bson:"images"`
	Featured            bool          `json:"featured" bson:"featured"`
	CreatedAt           time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt" bson:"updatedAt"`
}
