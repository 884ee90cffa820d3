package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"huurly_backend/internal/logger"
	"huurly_backend/internal/repositories"
	"huurly_backend/internal/services"
)

const (
	expirySweepInterval  = 6 * time.Hour
	tokenCleanupInterval = 24 * time.Hour
)

// SubscriptionWorker runs the periodic maintenance sweeps: expiring
// overdue subscriptions and pruning stale refresh tokens.
type SubscriptionWorker struct {
	db                  *gorm.DB
	subscriptionService services.SubscriptionService
	tokenRepo           repositories.RefreshTokenRepository
}

func NewSubscriptionWorker(
	db *gorm.DB,
	subscriptionService services.SubscriptionService,
	tokenRepo repositories.RefreshTokenRepository,
) *SubscriptionWorker {
	return &SubscriptionWorker{
		db:                  db,
		subscriptionService: subscriptionService,
		tokenRepo:           tokenRepo,
	}
}

func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.sweepExpiredSubscriptions(ctx)
	go w.cleanupRefreshTokens(ctx)
}

func (w *SubscriptionWorker) sweepExpiredSubscriptions(ctx context.Context) {
	ticker := time.NewTicker(expirySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Subscription expiry worker stopped")
			return
		case <-ticker.C:
			expired, err := w.subscriptionService.ExpireOverdue(w.db)
			logger.WorkerLog("subscription", "expire_overdue", err)
			if err == nil && expired > 0 {
				logger.Info("Expired overdue subscriptions", "count", expired)
			}
		}
	}
}

func (w *SubscriptionWorker) cleanupRefreshTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := w.tokenRepo.DeleteExpired(w.db)
			logger.WorkerLog("subscription", "cleanup_refresh_tokens", err)
			if err == nil && removed > 0 {
				logger.Info("Pruned expired refresh tokens", "count", removed)
			}
		}
	}
}
