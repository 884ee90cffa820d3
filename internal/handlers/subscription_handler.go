package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"huurly_backend/internal/config"
	"huurly_backend/internal/middleware"
	"huurly_backend/internal/models"
	"huurly_backend/internal/services"
	"huurly_backend/internal/services/dto"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	subs := rg.Group("/subscriptions")
	subs.Use(middleware.AuthMiddleware())
	subs.Use(middleware.RequireRoles(models.UserRoleHuurder))
	{
		subs.POST("", h.Start)
		subs.GET("/me", h.GetCurrent)
		subs.POST("/cancel", h.Cancel)
	}

	// The payment relay authenticates with a shared secret, not a user
	// token, so the webhook lives outside the auth group.
	rg.POST("/webhooks/payment", h.requireWebhookSecret, h.PaymentWebhook)
}

// requireWebhookSecret gates the payment webhook on the shared secret
// header. An unconfigured secret rejects everything: the relay cannot
// be wired up without one.
func (h *SubscriptionHandler) requireWebhookSecret(c *gin.Context) {
	secret := config.GetConfig().Subscription.WebhookSecret
	provided := c.GetHeader("X-Webhook-Secret")

	if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook secret"})
		return
	}
	c.Next()
}

func (h *SubscriptionHandler) Start(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.subscriptionService.Start(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SubscriptionHandler) GetCurrent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.subscriptionService.GetCurrent(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.subscriptionService.Cancel(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SubscriptionHandler) PaymentWebhook(c *gin.Context) {
	var req dto.PaymentWebhookRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.subscriptionService.HandlePaymentWebhook(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
