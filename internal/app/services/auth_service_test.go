package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
	"github.com/tahsin/scholarfolio/internal/pkg/auth"
)

func seedAdmin(t *testing.T, repo *fakeUserRepo, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user, err := repo.Create(context.Background(), &models.User{
		Email:    "admin@example.com",
		Password: hash,
		Name:     "Site Admin",
		RoleType: models.RoleAdmin,
	})
	require.NoError(t, err)
	return user
}

func newAuthTestService(repo *fakeUserRepo) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "scholarfolio-test",
	})
	return NewAuthService(repo, jwtService)
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	seedAdmin(t, repo, "admin1234")
	svc := newAuthTestService(repo)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "admin1234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, int64(3600), resp.Token.ExpiresIn)
	assert.Equal(t, "admin@example.com", resp.User.Email)
	assert.Equal(t, string(models.RoleAdmin), resp.User.Role)
	assert.Equal(t, 1, repo.lastLogins)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := &fakeUserRepo{}
	seedAdmin(t, repo, "admin1234")
	svc := newAuthTestService(repo)

	// Unknown email and wrong password come back as the same error.
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "admin1234",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetUserData(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedAdmin(t, repo, "admin1234")
	svc := newAuthTestService(repo)

	data, err := svc.GetUserData(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), data.ID)
	assert.Equal(t, "Site Admin", data.Name)

	_, err = svc.GetUserData(context.Background(), bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
