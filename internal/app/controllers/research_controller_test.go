package controllers

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
)

// stubResearchService satisfies services.ResearchService with canned data.
type stubResearchService struct {
	papers  []models.ResearchPaper
	pdfBody string
}

func (s *stubResearchService) List(context.Context) ([]models.ResearchPaper, error) {
	return s.papers, nil
}

func (s *stubResearchService) GetByID(_ context.Context, id string) (*models.ResearchPaper, error) {
	for i := range s.papers {
		if s.papers[i].ID.Hex() == id {
			return &s.papers[i], nil
		}
	}
	return nil, apperrors.ErrResearchNotFound
}

func (s *stubResearchService) Create(context.Context, *dto.CreateResearchRequest, *multipart.FileHeader) (*models.ResearchPaper, error) {
	return nil, nil
}

func (s *stubResearchService) Update(context.Context, string, *dto.UpdateResearchRequest, *multipart.FileHeader) (*models.ResearchPaper, error) {
	return nil, nil
}

func (s *stubResearchService) Delete(context.Context, string) error {
	return nil
}

func (s *stubResearchService) Download(_ context.Context, id string) (io.ReadCloser, int64, string, error) {
	paper, err := s.GetByID(context.Background(), id)
	if err != nil {
		return nil, 0, "", err
	}
	return io.NopCloser(strings.NewReader(s.pdfBody)), int64(len(s.pdfBody)), paper.Title + ".pdf", nil
}

func newResearchTestRouter(svc *stubResearchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewResearchController(svc, zerolog.Nop())

	router := gin.New()
	router.GET("/research", c.List)
	router.GET("/research/:id", c.GetByID)
	router.GET("/research/:id/download", c.Download)
	return router
}

func TestResearchListEnvelope(t *testing.T) {
	svc := &stubResearchService{papers: []models.ResearchPaper{
		{ID: bson.NewObjectID(), Title: "Paper One"},
	}}
	router := newResearchTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/research", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)
	assert.Nil(t, body.Pagination)
}

func TestResearchGetByIDNotFound(t *testing.T) {
	router := newResearchTestRouter(&stubResearchService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/research/"+bson.NewObjectID().Hex(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestResearchDownloadHeaders(t *testing.T) {
	paper := models.ResearchPaper{ID: bson.NewObjectID(), Title: "Edge_Caching"}
	svc := &stubResearchService{papers: []models.ResearchPaper{paper}, pdfBody: "%PDF-1.7 fake"}
	router := newResearchTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/research/"+paper.ID.Hex()+"/download", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Edge_Caching.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.7 fake", w.Body.String())
}
