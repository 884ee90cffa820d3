package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huurly_backend/internal/models"
	"huurly_backend/pkg/apperrors"
)

func TestNotify_StoresAndPushes(t *testing.T) {
	t.Parallel()

	repo := newFakeNotificationRepo()
	pusher := &fakePusher{}
	svc := NewNotificationService(repo, pusher)

	err := svc.Notify(nil, "tenant-1", models.NotificationTypeDocumentGoedgekeurd,
		"Document goedgekeurd", "Je paspoort is goedgekeurd.",
		map[string]string{"document_id": "doc-1"})
	require.NoError(t, err)

	stored := repo.byUser("tenant-1")
	require.Len(t, stored, 1)
	assert.Contains(t, string(stored[0].Payload), "doc-1")
	assert.Equal(t, []string{"tenant-1"}, pusher.pushed)
}

func TestNotify_NilPusherStillStores(t *testing.T) {
	t.Parallel()

	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, nil)

	err := svc.Notify(nil, "tenant-1", models.NotificationTypeSubscription,
		"Abonnement actief", "Welkom.", nil)
	require.NoError(t, err)
	assert.Len(t, repo.byUser("tenant-1"), 1)
}

func TestMarkRead_GuardsOwnership(t *testing.T) {
	t.Parallel()

	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, nil)

	require.NoError(t, svc.Notify(nil, "tenant-1", models.NotificationTypeSubscription,
		"Abonnement actief", "Welkom.", nil))
	stored := repo.byUser("tenant-1")
	require.Len(t, stored, 1)

	// Someone else's id does not reach the notification.
	err := svc.MarkRead(nil, "tenant-2", stored[0].ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	require.NoError(t, svc.MarkRead(nil, "tenant-1", stored[0].ID))

	count, err := svc.CountUnread(nil, "tenant-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkAllRead_CountsOnlyUnread(t *testing.T) {
	t.Parallel()

	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Notify(nil, "tenant-1", models.NotificationTypeSubscription,
			"Abonnement actief", "Welkom.", nil))
	}
	stored := repo.byUser("tenant-1")
	require.NoError(t, svc.MarkRead(nil, "tenant-1", stored[0].ID))

	count, err := svc.MarkAllRead(nil, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
