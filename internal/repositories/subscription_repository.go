package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"huurly_backend/internal/models"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrPaymentNotFound      = errors.New("payment not found")
)

type SubscriptionRepository interface {
	Create(db *gorm.DB, sub *models.UserSubscription) error
	FindByID(db *gorm.DB, id string) (*models.UserSubscription, error)
	FindByUser(db *gorm.DB, userID string) (*models.UserSubscription, error)
	Update(db *gorm.DB, sub *models.UserSubscription) error
	FindExpired(db *gorm.DB, now time.Time) ([]models.UserSubscription, error)
	CreatePayment(db *gorm.DB, payment *models.PaymentTransaction) error
	FindPaymentByExternalID(db *gorm.DB, externalID string) (*models.PaymentTransaction, error)
	UpdatePayment(db *gorm.DB, payment *models.PaymentTransaction) error
}

type SubscriptionRepositoryImpl struct{}

func NewSubscriptionRepository() SubscriptionRepository {
	return &SubscriptionRepositoryImpl{}
}

func (r *SubscriptionRepositoryImpl) Create(db *gorm.DB, sub *models.UserSubscription) error {
	return db.Create(sub).Error
}

func (r *SubscriptionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	err := db.First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// FindByUser returns the user's most recent subscription.
func (r *SubscriptionRepositoryImpl) FindByUser(db *gorm.DB, userID string) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	err := db.Where("user_id = ?", userID).Order("created_at DESC").First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) Update(db *gorm.DB, sub *models.UserSubscription) error {
	return db.Save(sub).Error
}

// FindExpired returns active subscriptions whose end date has passed.
func (r *SubscriptionRepositoryImpl) FindExpired(db *gorm.DB, now time.Time) ([]models.UserSubscription, error) {
	var subs []models.UserSubscription
	err := db.Where("status = ? AND end_date < ?", models.SubscriptionStatusActive, now).
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) CreatePayment(db *gorm.DB, payment *models.PaymentTransaction) error {
	return db.Create(payment).Error
}

func (r *SubscriptionRepositoryImpl) FindPaymentByExternalID(db *gorm.DB, externalID string) (*models.PaymentTransaction, error) {
	var payment models.PaymentTransaction
	err := db.First(&payment, "external_id = ?", externalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *SubscriptionRepositoryImpl) UpdatePayment(db *gorm.DB, payment *models.PaymentTransaction) error {
	return db.Save(payment).Error
}
