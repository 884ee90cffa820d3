package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huurly_backend/internal/models"
	"huurly_backend/pkg/apperrors"
)

func TestFavorite_SaveIsIdempotent(t *testing.T) {
	t.Parallel()

	favRepo := newFakeFavoriteRepo()
	profileRepo := newFakeTenantProfileRepo()
	profile := &models.TenantProfile{UserID: "tenant-1", ProfileComplete: true}
	require.NoError(t, profileRepo.Create(nil, profile))

	svc := NewFavoriteService(favRepo, profileRepo)

	require.NoError(t, svc.Save(nil, "landlord-1", profile.ID))
	require.NoError(t, svc.Save(nil, "landlord-1", profile.ID))

	profiles, err := svc.List(nil, "landlord-1")
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestFavorite_SaveUnknownProfile(t *testing.T) {
	t.Parallel()

	svc := NewFavoriteService(newFakeFavoriteRepo(), newFakeTenantProfileRepo())

	err := svc.Save(nil, "landlord-1", "missing")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestFavorite_RemoveMissingPair(t *testing.T) {
	t.Parallel()

	svc := NewFavoriteService(newFakeFavoriteRepo(), newFakeTenantProfileRepo())

	err := svc.Remove(nil, "landlord-1", "tenant-1")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestFavorite_ListSkipsDeletedProfiles(t *testing.T) {
	t.Parallel()

	favRepo := newFakeFavoriteRepo()
	profileRepo := newFakeTenantProfileRepo()

	kept := &models.TenantProfile{UserID: "tenant-1", ProfileComplete: true}
	gone := &models.TenantProfile{UserID: "tenant-2", ProfileComplete: true}
	require.NoError(t, profileRepo.Create(nil, kept))
	require.NoError(t, profileRepo.Create(nil, gone))

	svc := NewFavoriteService(favRepo, profileRepo)
	require.NoError(t, svc.Save(nil, "landlord-1", kept.ID))
	require.NoError(t, svc.Save(nil, "landlord-1", gone.ID))

	// Tenant 2 deletes their profile after being saved.
	require.NoError(t, profileRepo.Delete(nil, "tenant-2"))

	profiles, err := svc.List(nil, "landlord-1")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, kept.ID, profiles[0].ID)
}
