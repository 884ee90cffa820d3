package repositories

import (
	"errors"

	"gorm.io/gorm"

	"huurly_backend/internal/models"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository interface {
	Save(db *gorm.DB, landlordID, tenantID string) error
	Remove(db *gorm.DB, landlordID, tenantID string) error
	Exists(db *gorm.DB, landlordID, tenantID string) (bool, error)
	ListTenantIDs(db *gorm.DB, landlordID string) ([]string, error)
}

type FavoriteRepositoryImpl struct{}

func NewFavoriteRepository() FavoriteRepository {
	return &FavoriteRepositoryImpl{}
}

// Save is idempotent: saving an already-saved profile is a no-op.
func (r *FavoriteRepositoryImpl) Save(db *gorm.DB, landlordID, tenantID string) error {
	exists, err := r.Exists(db, landlordID, tenantID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return db.Create(&models.FavoriteProfile{
		LandlordID: landlordID,
		TenantID:   tenantID,
	}).Error
}

func (r *FavoriteRepositoryImpl) Remove(db *gorm.DB, landlordID, tenantID string) error {
	result := db.Delete(&models.FavoriteProfile{},
		"verhuurder_id = ? AND huurder_id = ?", landlordID, tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) Exists(db *gorm.DB, landlordID, tenantID string) (bool, error) {
	var count int64
	err := db.Model(&models.FavoriteProfile{}).
		Where("verhuurder_id = ? AND huurder_id = ?", landlordID, tenantID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepositoryImpl) ListTenantIDs(db *gorm.DB, landlordID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.FavoriteProfile{}).
		Where("verhuurder_id = ?", landlordID).
		Order("created_at DESC").
		Pluck("huurder_id", &ids).Error
	return ids, err
}
