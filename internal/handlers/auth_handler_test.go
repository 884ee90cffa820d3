package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huurly_backend/internal/models"
	"huurly_backend/internal/services/dto"
	"huurly_backend/pkg/apperrors"
)

func TestAuthRegister_HappyPath(t *testing.T) {
	svc := &stubAuthService{
		resp: &dto.AuthResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         dto.UserResponse{ID: "user-1", Role: models.UserRoleHuurder},
		},
	}
	router := newTestRouter(NewAuthHandler(newTestBase(), svc))

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"jan@example.nl","naam":"Jan","password":"wachtwoord123","role":"huurder"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access"`)
}

func TestAuthRegister_MalformedBodyIsRejectedBeforeTheService(t *testing.T) {
	svc := &stubAuthService{err: apperrors.InternalError(assert.AnError)}
	router := newTestRouter(NewAuthHandler(newTestBase(), svc))

	// Bad email, short password, unknown role: none of it reaches the stub.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"geen-email","naam":"Jan","password":"kort","role":"beheerder"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthLogin_ServiceErrorKeepsItsStatus(t *testing.T) {
	svc := &stubAuthService{err: apperrors.ErrInvalidCredentials}
	router := newTestRouter(NewAuthHandler(newTestBase(), svc))

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"jan@example.nl","password":"wachtwoord123"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthLogout_RequiresRefreshToken(t *testing.T) {
	svc := &stubAuthService{}
	router := newTestRouter(NewAuthHandler(newTestBase(), svc))

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout",
		`{"refresh_token":"abc"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
