package dto

import (
	"time"

	"huurly_backend/internal/models"
)

type SubscriptionResponse struct {
	ID          string                    `json:"id"`
	Status      models.SubscriptionStatus `json:"status"`
	PriceCents  int64                     `json:"price_cents"`
	Currency    string                    `json:"currency"`
	StartDate   time.Time                 `json:"start_date"`
	EndDate     time.Time                 `json:"end_date"`
	CancelledAt *time.Time                `json:"cancelled_at,omitempty"`
}

// PaymentWebhookRequest is the payload the payment relay posts back
// once a checkout settles.
type PaymentWebhookRequest struct {
	ExternalID     string `json:"external_id" validate:"required"`
	SubscriptionID string `json:"subscription_id" validate:"required"`
	Status         string `json:"status" validate:"required,oneof=paid failed refunded"`
	AmountCents    int64  `json:"amount_cents" validate:"gte=0"`
	Currency       string `json:"currency"`
}

func NewSubscriptionResponse(s *models.UserSubscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:          s.ID,
		Status:      s.Status,
		PriceCents:  s.PriceCents,
		Currency:    s.Currency,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		CancelledAt: s.CancelledAt,
	}
}
