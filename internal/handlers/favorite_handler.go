package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"huurly_backend/internal/middleware"
	"huurly_backend/internal/models"
	"huurly_backend/internal/services"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware())
	favorites.Use(middleware.RequireRoles(models.UserRoleVerhuurder))
	{
		favorites.GET("", h.List)
		favorites.PUT("/:profileId", h.Save)
		favorites.DELETE("/:profileId", h.Remove)
	}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profiles, err := h.favoriteService.List(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": profiles})
}

// Save is a PUT because favoriting is idempotent.
func (h *FavoriteHandler) Save(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.favoriteService.Save(h.GetDB(c), userID, c.Param("profileId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profiel opgeslagen"})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(h.GetDB(c), userID, c.Param("profileId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profiel verwijderd uit favorieten"})
}
