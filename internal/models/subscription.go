package models

import "time"

type UserSubscription struct {
	BaseModel
	UserID      string             `gorm:"not null;index" json:"user_id"`
	Status      SubscriptionStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PriceCents  int64              `gorm:"not null" json:"price_cents"`
	Currency    string             `gorm:"type:varchar(3);default:'EUR'" json:"currency"`
	StartDate   time.Time          `json:"start_date"`
	EndDate     time.Time          `json:"end_date"`
	AutoRenew   bool               `gorm:"default:false" json:"auto_renew"`
	CancelledAt *time.Time         `json:"cancelled_at,omitempty"`

	// Relations
	Payments []PaymentTransaction `gorm:"foreignKey:SubscriptionID" json:"payments,omitempty"`
}

// PaymentTransaction records one attempt reported by the payment relay.
type PaymentTransaction struct {
	BaseModel
	UserID         string        `gorm:"not null;index" json:"user_id"`
	SubscriptionID string        `gorm:"not null;index" json:"subscription_id"`
	AmountCents    int64         `json:"amount_cents"`
	Currency       string        `gorm:"type:varchar(3)" json:"currency"`
	Status         PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ExternalID     string        `gorm:"uniqueIndex" json:"external_id"` // id assigned by the payment provider
	PaidAt         *time.Time    `json:"paid_at,omitempty"`
}
