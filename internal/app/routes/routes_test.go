package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tahsin/scholarfolio/internal/app/controllers"
	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/middleware"
	"github.com/tahsin/scholarfolio/internal/pkg/auth"
)

// The gate tests never reach a handler, so the controllers can be built
// with nil services.
func newGateTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "scholarfolio-test",
	})
	lgr := zerolog.Nop()

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(nil, jwtService, lgr),
		controllers.NewProfileController(nil, lgr),
		controllers.NewAchievementController(nil, lgr),
		controllers.NewResearchController(nil, lgr),
		controllers.NewProjectController(nil, lgr),
		controllers.NewCertificateController(nil, lgr),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, jwtService
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newGateTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMutationsRequireAuth(t *testing.T) {
	router, _ := newGateTestRouter(t)

	requests := []struct {
		method string
		path   string
	}{
		{"POST", "/api/researchAchievement/achievements"},
		{"PUT", "/api/researchAchievement/achievements/" + bson.NewObjectID().Hex()},
		{"DELETE", "/api/researchAchievement/research/" + bson.NewObjectID().Hex()},
		{"POST", "/api/projects"},
		{"DELETE", "/api/certificates/" + bson.NewObjectID().Hex()},
		{"PUT", "/api/users/update-profile"},
		{"GET", "/api/users/messages"},
		{"DELETE", "/api/users/news/" + bson.NewObjectID().Hex()},
	}
	for _, r := range requests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(r.method, r.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", r.method, r.path)
	}
}

func TestMutationsRejectNonAdmin(t *testing.T) {
	router, jwtService := newGateTestRouter(t)

	token, _, err := jwtService.GenerateToken(&models.User{
		ID:       bson.NewObjectID(),
		Email:    "visitor@example.com",
		RoleType: models.RoleVisitor,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest("GET", "/api/users/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
