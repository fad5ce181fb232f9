package web

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
)

const templateDir = "../../web/templates"

func testProfile() *models.Profile {
	return &models.Profile{
		Owner:    models.DefaultOwner,
		FullName: "Dr. Jane Doe",
		Position: "Associate Professor",
		Bio:      "Researcher in distributed systems.",
		About:    "Longer about text.",
		Education: []models.Education{
			{Degree: "PhD in CS", Institution: "MIT", Year: "2018"},
		},
		NewsItems: []models.NewsItem{
			{ID: bson.NewObjectID(), Date: "2024-06-01", Title: "Grant awarded", Description: "Details"},
		},
		Courses: []models.Course{
			{ID: bson.NewObjectID(), Title: "Go 101", Platform: "Coursera", Category: models.CourseCategoryTechnical},
		},
		OfficeHours: []models.OfficeHour{{Day: "Monday", Hours: "10:00-12:00"}},
	}
}

func render(t *testing.T, name string, data gin.H) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r, err := NewRenderer(templateDir)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	r.Render(c, name, data)
	require.Equal(t, 200, w.Code)
	return w.Body.String()
}

func TestNewRendererParsesAllPages(t *testing.T) {
	r, err := NewRenderer(templateDir)
	require.NoError(t, err)

	for _, page := range []string{
		"home.html", "achievements.html", "research.html",
		"projects.html", "certificates.html", "login.html", "messages.html",
	} {
		assert.Contains(t, r.templates, page)
	}
}

func TestRenderHome(t *testing.T) {
	body := render(t, "home.html", gin.H{
		"Title":   "Home",
		"Profile": testProfile(),
		"IsAdmin": false,
	})

	assert.Contains(t, body, "Dr. Jane Doe")
	assert.Contains(t, body, "Grant awarded")
	assert.Contains(t, body, "Go 101")
	assert.NotContains(t, body, "/admin/messages")
}

func TestRenderAdminNavigation(t *testing.T) {
	body := render(t, "home.html", gin.H{
		"Title":   "Home",
		"Profile": testProfile(),
		"IsAdmin": true,
	})
	assert.Contains(t, body, "/admin/messages")
}

func TestRenderProjectsWithPagination(t *testing.T) {
	body := render(t, "projects.html", gin.H{
		"Title":   "Projects",
		"Profile": testProfile(),
		"IsAdmin": false,
		"Projects": []models.Project{
			{ID: bson.NewObjectID(), Title: "Campus Navigator", Category: models.ProjectCategoryResearch, ProjectDate: time.Now()},
		},
		"Pagination": &dto.PaginationInfo{CurrentPage: 2, TotalPages: 3, TotalCount: 25, HasNext: true, HasPrev: true},
		"Category":   "research",
		"Categories": models.ProjectCategories,
	})

	assert.Contains(t, body, "Campus Navigator")
	assert.Contains(t, body, "Page 2 of 3")
	assert.Contains(t, body, "?page=1")
	assert.Contains(t, body, "?page=3")
}

func TestRenderMessages(t *testing.T) {
	body := render(t, "messages.html", gin.H{
		"Title":   "Messages",
		"Profile": testProfile(),
		"IsAdmin": true,
		"Messages": []models.ContactMessage{
			{ID: bson.NewObjectID(), Name: "Visitor", MsgEmail: "v@example.com", Subject: "Hello", Message: "Hi", CreatedAt: time.Now()},
		},
	})
	assert.Contains(t, body, "Hello")
	assert.Contains(t, body, "v@example.com")
}

func TestRenderUnknownTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := NewRenderer(templateDir)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	r.Render(c, "nope.html", gin.H{})
	assert.Equal(t, 500, w.Code)
}
