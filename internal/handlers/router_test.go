package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"huurly_backend/internal/auth"
	"huurly_backend/internal/config"
	"huurly_backend/internal/services/dto"
	"huurly_backend/internal/validator"
	"huurly_backend/pkg/contextkeys"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// installTestConfig makes token issuing work without a config file.
func installTestConfig() {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Subscription.WebhookSecret = "relay-secret"
	config.AppConfig = cfg
}

type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// newTestRouter wires handlers behind the same middleware chain the app
// uses, with a nil db on the context; stub services never touch it.
func newTestRouter(handlers ...routeRegistrar) *gin.Engine {
	installTestConfig()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), (*gorm.DB)(nil))
		c.Next()
	})

	api := router.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
	return router
}

func newTestBase() *BaseHandler {
	return NewBaseHandler(validator.New())
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// Stub services. Each records the last call and plays back a canned
// response.

type stubAuthService struct {
	resp *dto.AuthResponse
	err  error
}

func (s *stubAuthService) Register(_ *gorm.DB, _ *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Login(_ *gorm.DB, _ *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Refresh(_ *gorm.DB, _ string) (*dto.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Logout(_ *gorm.DB, _ string) error {
	return s.err
}

type stubSearchService struct {
	lastReq *dto.SearchTenantsRequest
	resp    *dto.SearchTenantsResponse
}

func (s *stubSearchService) SearchTenants(_ context.Context, _ *gorm.DB, req *dto.SearchTenantsRequest) *dto.SearchTenantsResponse {
	s.lastReq = req
	if s.resp != nil {
		return s.resp
	}
	return &dto.SearchTenantsResponse{Results: []dto.TenantMatch{}}
}
