package repositories

import (
	"errors"

	"gorm.io/gorm"

	"huurly_backend/internal/models"
)

type LandlordProfileRepository interface {
	Create(db *gorm.DB, profile *models.LandlordProfile) error
	FindByUserID(db *gorm.DB, userID string) (*models.LandlordProfile, error)
	Update(db *gorm.DB, profile *models.LandlordProfile) error
	Delete(db *gorm.DB, userID string) error
}

type LandlordProfileRepositoryImpl struct{}

func NewLandlordProfileRepository() LandlordProfileRepository {
	return &LandlordProfileRepositoryImpl{}
}

func (r *LandlordProfileRepositoryImpl) Create(db *gorm.DB, profile *models.LandlordProfile) error {
	return db.Create(profile).Error
}

func (r *LandlordProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.LandlordProfile, error) {
	var profile models.LandlordProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *LandlordProfileRepositoryImpl) Update(db *gorm.DB, profile *models.LandlordProfile) error {
	return db.Save(profile).Error
}

func (r *LandlordProfileRepositoryImpl) Delete(db *gorm.DB, userID string) error {
	return db.Delete(&models.LandlordProfile{}, "user_id = ?", userID).Error
}
