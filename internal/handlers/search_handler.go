package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"huurly_backend/internal/middleware"
	"huurly_backend/internal/models"
	"huurly_backend/internal/services"
	"huurly_backend/internal/services/dto"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	search := rg.Group("/search")
	search.Use(middleware.AuthMiddleware())
	search.Use(middleware.RequireRoles(models.UserRoleVerhuurder, models.UserRoleBeheerder))
	{
		search.GET("/tenants", h.SearchTenants)
		search.POST("/tenants", h.SearchTenantsPost)
	}
}

// SearchTenants serves the landlord search form via query parameters.
// The response is always 200; a degraded flag marks backend trouble.
func (h *SearchHandler) SearchTenants(c *gin.Context) {
	var req dto.SearchTenantsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp := h.searchService.SearchTenants(c.Request.Context(), h.GetDB(c), &req)
	c.JSON(http.StatusOK, resp)
}

// SearchTenantsPost accepts the same criteria as a JSON body, used by
// the saved-search UI.
func (h *SearchHandler) SearchTenantsPost(c *gin.Context) {
	var req dto.SearchTenantsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp := h.searchService.SearchTenants(c.Request.Context(), h.GetDB(c), &req)
	c.JSON(http.StatusOK, resp)
}
