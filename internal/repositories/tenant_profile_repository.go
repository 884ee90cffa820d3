package repositories

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"huurly_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// TenantSearchCriteria are the backend-side filters of a tenant search.
// Scoring happens in the service layer on top of the filtered set.
type TenantSearchCriteria struct {
	City      string
	MinBudget *float64
	MaxBudget *float64
	HasPets   *bool
	Smokes    *bool
	Page      int
	PageSize  int
}

type TenantProfileRepository interface {
	Create(db *gorm.DB, profile *models.TenantProfile) error
	FindByUserID(db *gorm.DB, userID string) (*models.TenantProfile, error)
	FindByID(db *gorm.DB, id string) (*models.TenantProfile, error)
	Update(db *gorm.DB, profile *models.TenantProfile) error
	Delete(db *gorm.DB, userID string) error
	Search(db *gorm.DB, criteria *TenantSearchCriteria) ([]models.TenantProfile, int64, error)
}

type TenantProfileRepositoryImpl struct{}

func NewTenantProfileRepository() TenantProfileRepository {
	return &TenantProfileRepositoryImpl{}
}

func (r *TenantProfileRepositoryImpl) Create(db *gorm.DB, profile *models.TenantProfile) error {
	return db.Create(profile).Error
}

func (r *TenantProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.TenantProfile, error) {
	var profile models.TenantProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *TenantProfileRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.TenantProfile, error) {
	var profile models.TenantProfile
	err := db.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *TenantProfileRepositoryImpl) Update(db *gorm.DB, profile *models.TenantProfile) error {
	return db.Save(profile).Error
}

func (r *TenantProfileRepositoryImpl) Delete(db *gorm.DB, userID string) error {
	return db.Delete(&models.TenantProfile{}, "user_id = ?", userID).Error
}

// Search returns completed profiles matching the hard filters. Budget
// bounds apply to the tenant's max_huur; lifestyle filters only apply
// when the searcher specified them.
func (r *TenantProfileRepositoryImpl) Search(db *gorm.DB, criteria *TenantSearchCriteria) ([]models.TenantProfile, int64, error) {
	query := db.Model(&models.TenantProfile{}).Where("profiel_compleet = ?", true)

	if criteria.City != "" {
		query = query.Where("locatie_voorkeur && ?", pq.StringArray{criteria.City})
	}
	if criteria.MinBudget != nil {
		query = query.Where("max_huur >= ?", *criteria.MinBudget)
	}
	if criteria.MaxBudget != nil {
		query = query.Where("max_huur <= ?", *criteria.MaxBudget)
	}
	if criteria.HasPets != nil {
		query = query.Where("huisdieren = ?", *criteria.HasPets)
	}
	if criteria.Smokes != nil {
		query = query.Where("roken = ?", *criteria.Smokes)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var profiles []models.TenantProfile
	err := query.Order("updated_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&profiles).Error
	return profiles, total, err
}
