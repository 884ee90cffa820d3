package repositories

import (
	"errors"

	"gorm.io/gorm"

	"huurly_backend/internal/models"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	Create(db *gorm.DB, doc *models.Document) error
	FindByID(db *gorm.DB, id string) (*models.Document, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Document, error)
	FindByStatus(db *gorm.DB, status models.DocumentStatus, page, pageSize int) ([]models.Document, int64, error)
	Update(db *gorm.DB, doc *models.Document) error
	Delete(db *gorm.DB, id string) error
}

type DocumentRepositoryImpl struct{}

func NewDocumentRepository() DocumentRepository {
	return &DocumentRepositoryImpl{}
}

func (r *DocumentRepositoryImpl) Create(db *gorm.DB, doc *models.Document) error {
	return db.Create(doc).Error
}

func (r *DocumentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Document, error) {
	var doc models.Document
	err := db.First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Document, error) {
	var docs []models.Document
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) FindByStatus(db *gorm.DB, status models.DocumentStatus, page, pageSize int) ([]models.Document, int64, error) {
	query := db.Model(&models.Document{}).Where("status = ?", status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var docs []models.Document
	err := query.Order("created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&docs).Error
	return docs, total, err
}

func (r *DocumentRepositoryImpl) Update(db *gorm.DB, doc *models.Document) error {
	return db.Save(doc).Error
}

func (r *DocumentRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Document{}, "id = ?", id).Error
}
