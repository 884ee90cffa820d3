package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huurly_backend/internal/models"
	"huurly_backend/internal/services/dto"
	"huurly_backend/pkg/apperrors"
)

type subscriptionFixture struct {
	svc              SubscriptionService
	subscriptionRepo *fakeSubscriptionRepo
	notificationRepo *fakeNotificationRepo
}

func newSubscriptionFixture() *subscriptionFixture {
	cfg := testConfig()
	subscriptionRepo := newFakeSubscriptionRepo()
	notificationRepo := newFakeNotificationRepo()
	return &subscriptionFixture{
		svc:              NewSubscriptionService(subscriptionRepo, NewNotificationService(notificationRepo, nil), cfg),
		subscriptionRepo: subscriptionRepo,
		notificationRepo: notificationRepo,
	}
}

func paidWebhook(externalID, subscriptionID string) *dto.PaymentWebhookRequest {
	return &dto.PaymentWebhookRequest{
		ExternalID:     externalID,
		SubscriptionID: subscriptionID,
		Status:         "paid",
		AmountCents:    6500,
		Currency:       "EUR",
	}
}

func TestSubscriptionStart_OpensPendingAtConfiguredPrice(t *testing.T) {
	fx := newSubscriptionFixture()

	sub, err := fx.svc.Start(nil, "tenant-1")
	require.NoError(t, err)

	assert.Equal(t, models.SubscriptionStatusPending, sub.Status)
	assert.Equal(t, int64(6500), sub.PriceCents)
	assert.Equal(t, "EUR", sub.Currency)
}

func TestSubscriptionStart_RejectsSecondRunningSubscription(t *testing.T) {
	fx := newSubscriptionFixture()

	first, err := fx.svc.Start(nil, "tenant-1")
	require.NoError(t, err)

	// Pending blocks a restart.
	_, err = fx.svc.Start(nil, "tenant-1")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)

	// So does active.
	require.NoError(t, fx.svc.HandlePaymentWebhook(nil, paidWebhook("pay-1", first.ID)))
	_, err = fx.svc.Start(nil, "tenant-1")
	assert.Error(t, err)
}

func TestPaymentWebhook_PaidActivatesForConfiguredDuration(t *testing.T) {
	fx := newSubscriptionFixture()

	started, err := fx.svc.Start(nil, "tenant-1")
	require.NoError(t, err)

	require.NoError(t, fx.svc.HandlePaymentWebhook(nil, paidWebhook("pay-1", started.ID)))

	sub, err := fx.svc.GetCurrent(nil, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusActive, sub.Status)

	wantEnd := time.Now().AddDate(0, 0, 182)
	assert.WithinDuration(t, wantEnd, sub.EndDate, time.Minute)

	notifications := fx.notificationRepo.byUser("tenant-1")
	require.Len(t, notifications, 1)
	assert.Equal(t, "Abonnement actief", notifications[0].Title)
}

func TestPaymentWebhook_ReplayedExternalIDIsANoOp(t *testing.T) {
	fx := newSubscriptionFixture()

	started, err := fx.svc.Start(nil, "tenant-1")
	require.NoError(t, err)

	require.NoError(t, fx.svc.HandlePaymentWebhook(nil, paidWebhook("pay-1", started.ID)))
	require.NoError(t, fx.svc.HandlePaymentWebhook(nil, paidWebhook("pay-1", started.ID)))

	// Only the first delivery created a notification.
	assert.Len(t, fx.notificationRepo.byUser("tenant-1"), 1)
	assert.Len(t, fx.subscriptionRepo.payments, 1)
}

func TestPaymentWebhook_FailedPaymentDoesNotActivate(t *testing.T) {
	fx := newSubscriptionFixture()

	started, err := fx.svc.Start(nil, "tenant-1")
	require.NoError(t, err)

	req := paidWebhook("pay-1", started.ID)
	req.Status = "failed"
	require.NoError(t, fx.svc.HandlePaymentWebhook(nil, req))

	sub, err := fx.svc.GetCurrent(nil, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusPending, sub.Status)
	assert.Empty(t, fx.notificationRepo.byUser("tenant-1"))

	// The failed attempt is still recorded.
	payment, err := fx.subscriptionRepo.FindPaymentByExternalID(nil, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, payment.Status)
	assert.Nil(t, payment.PaidAt)
}

func TestPaymentWebhook_UnknownSubscription(t *testing.T) {
	fx := newSubscriptionFixture()

	err := fx.svc.HandlePaymentWebhook(nil, paidWebhook("pay-1", "missing"))
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestSubscriptionCancel_KeepsAccessUntilEndDate(t *testing.T) {
	fx := newSubscriptionFixture()

	started, err := fx.svc.Start(nil, "tenant-1")
	require.NoError(t, err)
	require.NoError(t, fx.svc.HandlePaymentWebhook(nil, paidWebhook("pay-1", started.ID)))

	cancelled, err := fx.svc.Cancel(nil, "tenant-1")
	require.NoError(t, err)

	assert.Equal(t, models.SubscriptionStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	stored, err := fx.subscriptionRepo.FindByID(nil, cancelled.ID)
	require.NoError(t, err)
	assert.False(t, stored.AutoRenew)

	// The paid-for end date survives the cancel.
	assert.True(t, cancelled.EndDate.After(time.Now()))

	// A settled subscription cannot be cancelled again.
	_, err = fx.svc.Cancel(nil, "tenant-1")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestExpireOverdue_FlipsAndNotifies(t *testing.T) {
	fx := newSubscriptionFixture()

	overdue := &models.UserSubscription{
		UserID:    "tenant-1",
		Status:    models.SubscriptionStatusActive,
		StartDate: time.Now().AddDate(0, -6, 0),
		EndDate:   time.Now().Add(-time.Hour),
	}
	running := &models.UserSubscription{
		UserID:    "tenant-2",
		Status:    models.SubscriptionStatusActive,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 0, 182),
	}
	require.NoError(t, fx.subscriptionRepo.Create(nil, overdue))
	require.NoError(t, fx.subscriptionRepo.Create(nil, running))

	count, err := fx.svc.ExpireOverdue(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	storedOverdue, err := fx.subscriptionRepo.FindByID(nil, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusExpired, storedOverdue.Status)

	storedRunning, err := fx.subscriptionRepo.FindByID(nil, running.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusActive, storedRunning.Status)

	notifications := fx.notificationRepo.byUser("tenant-1")
	require.Len(t, notifications, 1)
	assert.Equal(t, "Abonnement verlopen", notifications[0].Title)
	assert.Empty(t, fx.notificationRepo.byUser("tenant-2"))
}
