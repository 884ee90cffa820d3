package services

import (
	"errors"

	"gorm.io/gorm"

	"huurly_backend/internal/models"
	"huurly_backend/internal/repositories"
	"huurly_backend/internal/services/dto"
	"huurly_backend/pkg/apperrors"
)

type LandlordProfileService interface {
	Upsert(db *gorm.DB, userID string, req *dto.LandlordProfileRequest) (*models.LandlordProfile, error)
	GetByUserID(db *gorm.DB, userID string) (*models.LandlordProfile, error)
}

type landlordProfileService struct {
	profileRepo repositories.LandlordProfileRepository
}

func NewLandlordProfileService(profileRepo repositories.LandlordProfileRepository) LandlordProfileService {
	return &landlordProfileService{profileRepo: profileRepo}
}

func (s *landlordProfileService) Upsert(db *gorm.DB, userID string, req *dto.LandlordProfileRequest) (*models.LandlordProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	isNew := profile == nil
	if isNew {
		profile = &models.LandlordProfile{UserID: userID}
	}

	profile.CompanyName = req.CompanyName
	profile.PropertyCount = req.PropertyCount
	profile.Description = req.Description
	profile.Website = req.Website

	if isNew {
		err = s.profileRepo.Create(db, profile)
	} else {
		err = s.profileRepo.Update(db, profile)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *landlordProfileService) GetByUserID(db *gorm.DB, userID string) (*models.LandlordProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
