package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"huurly_backend/internal/config"
	"huurly_backend/internal/services/dto"
)

type stubSubscriptionService struct {
	lastWebhook *dto.PaymentWebhookRequest
	resp        *dto.SubscriptionResponse
	err         error
}

func (s *stubSubscriptionService) Start(_ *gorm.DB, _ string) (*dto.SubscriptionResponse, error) {
	return s.resp, s.err
}

func (s *stubSubscriptionService) GetCurrent(_ *gorm.DB, _ string) (*dto.SubscriptionResponse, error) {
	return s.resp, s.err
}

func (s *stubSubscriptionService) Cancel(_ *gorm.DB, _ string) (*dto.SubscriptionResponse, error) {
	return s.resp, s.err
}

func (s *stubSubscriptionService) HandlePaymentWebhook(_ *gorm.DB, req *dto.PaymentWebhookRequest) error {
	s.lastWebhook = req
	return s.err
}

func (s *stubSubscriptionService) ExpireOverdue(_ *gorm.DB) (int, error) {
	return 0, s.err
}

func postWebhook(t *testing.T, router http.Handler, body, secret string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Webhook-Secret", secret)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const forgedEvent = `{"external_id":"forged-1","subscription_id":"sub-1","status":"paid","amount_cents":6500,"currency":"EUR"}`

func TestPaymentWebhook_RejectsMissingOrWrongSecret(t *testing.T) {
	svc := &stubSubscriptionService{}
	router := newTestRouter(NewSubscriptionHandler(newTestBase(), svc))

	rec := postWebhook(t, router, forgedEvent, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postWebhook(t, router, forgedEvent, "geraden")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Neither attempt reached the service.
	assert.Nil(t, svc.lastWebhook)
}

func TestPaymentWebhook_RejectsEverythingWhenSecretUnset(t *testing.T) {
	svc := &stubSubscriptionService{}
	router := newTestRouter(NewSubscriptionHandler(newTestBase(), svc))
	config.AppConfig.Subscription.WebhookSecret = ""

	rec := postWebhook(t, router, forgedEvent, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.lastWebhook)
}

func TestPaymentWebhook_SharedSecretPassesThrough(t *testing.T) {
	svc := &stubSubscriptionService{}
	router := newTestRouter(NewSubscriptionHandler(newTestBase(), svc))

	rec := postWebhook(t, router, forgedEvent, "relay-secret")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastWebhook)
	assert.Equal(t, "forged-1", svc.lastWebhook.ExternalID)
}
