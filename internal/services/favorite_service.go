package services

import (
	"errors"

	"gorm.io/gorm"

	"huurly_backend/internal/models"
	"huurly_backend/internal/repositories"
	"huurly_backend/pkg/apperrors"
)

type FavoriteService interface {
	Save(db *gorm.DB, landlordID, tenantProfileID string) error
	Remove(db *gorm.DB, landlordID, tenantProfileID string) error
	List(db *gorm.DB, landlordID string) ([]models.TenantProfile, error)
}

type favoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	profileRepo  repositories.TenantProfileRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	profileRepo repositories.TenantProfileRepository,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		profileRepo:  profileRepo,
	}
}

// Save marks a tenant profile as favorite. Saving twice is a no-op,
// not an error.
func (s *favoriteService) Save(db *gorm.DB, landlordID, tenantProfileID string) error {
	if _, err := s.profileRepo.FindByID(db, tenantProfileID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.favoriteRepo.Save(db, landlordID, tenantProfileID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *favoriteService) Remove(db *gorm.DB, landlordID, tenantProfileID string) error {
	err := s.favoriteRepo.Remove(db, landlordID, tenantProfileID)
	if errors.Is(err, repositories.ErrFavoriteNotFound) {
		return apperrors.ErrNotFound(err)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// List returns the saved profiles, most recently saved first. Profiles
// deleted since being saved are silently skipped.
func (s *favoriteService) List(db *gorm.DB, landlordID string) ([]models.TenantProfile, error) {
	ids, err := s.favoriteRepo.ListTenantIDs(db, landlordID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profiles := make([]models.TenantProfile, 0, len(ids))
	for _, id := range ids {
		profile, err := s.profileRepo.FindByID(db, id)
		if errors.Is(err, repositories.ErrProfileNotFound) {
			continue
		}
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}
