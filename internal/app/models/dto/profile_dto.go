package dto

import "github.com/tahsin/scholarfolio/internal/app/models"

// UpdateHeroRequest updates the hero section of the profile singleton.
type UpdateHeroRequest struct {
	FullName *string `json:"fullName" form:"fullName"`
	Position *string `json:"position" form:"position"`
	Bio      *string `json:"bio" form:"bio"`
}

// UpdateAcademicRequest rewrites the academic section. A nil slice keeps the
// stored entries; a present slice replaces them wholesale.
type UpdateAcademicRequest struct {
	Education []models.Education `json:"education"`
}

// UpdateAboutRequest updates the about section.
type UpdateAboutRequest struct {
	About        *string             `json:"about"`
	Philosophies []models.Philosophy `json:"philosophies"`
	CvURL        *string             `json:"cvUrl"`
}

// UpdateNewsRequest replaces the news feed wholesale.
type UpdateNewsRequest struct {
	NewsItems []models.NewsItem `json:"newsItems" binding:"required"`
}

// UpdateCoursesRequest replaces the courses list wholesale.
type UpdateCoursesRequest struct {
	Courses []models.Course `json:"courses" binding:"required"`
}

// UpdateContactInfoRequest updates the contact section.
type UpdateContactInfoRequest struct {
	Phone          *string                `json:"phone"`
	AdminEmail     *string                `json:"adminEmail"`
	MsgEmail       *string                `json:"msgEmail"`
	OfficeLocation *models.OfficeLocation `json:"officeLocation"`
	OfficeHours    []models.OfficeHour    `json:"officeHours"`
}

// ContactMessageRequest is a visitor-submitted message from the public
// contact form.
type ContactMessageRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}
