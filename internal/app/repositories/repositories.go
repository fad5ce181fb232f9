package repositories

import (
	"github.com/tahsin/scholarfolio/internal/db"
)

// Collection names.
const (
	colUsers          = "users"
	colProfiles       = "profiles"
	colAchievements   = "achievements"
	colResearchPapers = "research_papers"
	colProjects       = "projects"
	colCertificates   = "certificates"
)

// ContentFilter narrows list queries over a content collection.
type ContentFilter struct {
	// Category filters by equality; empty or "all" disables the filter
	Category string
	// FeaturedOnly keeps only featured documents when true
	FeaturedOnly bool
	// Skip/Limit implement page-based pagination; Limit <= 0 means no cap
	Skip  int64
	Limit int
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	ProfileRepository     *ProfileRepository
	AchievementRepository *AchievementRepository
	ResearchRepository    *ResearchRepository
	ProjectRepository     *ProjectRepository
	CertificateRepository *CertificateRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.Mongo) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(database),
		ProfileRepository:     NewProfileRepository(database),
		AchievementRepository: NewAchievementRepository(database),
		ResearchRepository:    NewResearchRepository(database),
		ProjectRepository:     NewProjectRepository(database),
		CertificateRepository: NewCertificateRepository(database),
	}
}
