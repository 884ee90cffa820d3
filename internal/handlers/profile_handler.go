package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"huurly_backend/internal/middleware"
	"huurly_backend/internal/models"
	"huurly_backend/internal/services"
	"huurly_backend/internal/services/dto"
	"huurly_backend/pkg/apperrors"
)

type ProfileHandler struct {
	*BaseHandler
	tenantService   services.TenantProfileService
	landlordService services.LandlordProfileService
}

func NewProfileHandler(
	base *BaseHandler,
	tenantService services.TenantProfileService,
	landlordService services.LandlordProfileService,
) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:     base,
		tenantService:   tenantService,
		landlordService: landlordService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tenant := rg.Group("/profiles/tenant")
	tenant.Use(middleware.AuthMiddleware())
	tenant.Use(middleware.RequireRoles(models.UserRoleHuurder))
	{
		tenant.GET("/me", h.GetTenantProfile)
		tenant.PUT("/me/draft", h.SaveTenantDraft)
		tenant.PUT("/me", h.SubmitTenantProfile)
		tenant.POST("/validate-step", h.ValidateStep)
	}

	landlord := rg.Group("/profiles/landlord")
	landlord.Use(middleware.AuthMiddleware())
	landlord.Use(middleware.RequireRoles(models.UserRoleVerhuurder))
	{
		landlord.GET("/me", h.GetLandlordProfile)
		landlord.PUT("/me", h.UpsertLandlordProfile)
	}
}

func (h *ProfileHandler) GetTenantProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.tenantService.GetByUserID(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SaveTenantDraft stores the wizard snapshot without step gating.
func (h *ProfileHandler) SaveTenantDraft(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var form dto.TenantProfileRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	profile, err := h.tenantService.SaveDraft(h.GetDB(c), userID, &form)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SubmitTenantProfile runs the full step pipeline before persisting.
func (h *ProfileHandler) SubmitTenantProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var form dto.TenantProfileRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	profile, err := h.tenantService.Submit(h.GetDB(c), userID, &form)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ValidateStep lets the wizard gate a single step server-side before
// moving on.
func (h *ProfileHandler) ValidateStep(c *gin.Context) {
	var req dto.StepValidationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.tenantService.ValidateStep(req.Step, req.Data))
}

func (h *ProfileHandler) GetLandlordProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.landlordService.GetByUserID(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpsertLandlordProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.LandlordProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.landlordService.Upsert(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
