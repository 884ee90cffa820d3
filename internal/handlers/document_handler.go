package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"huurly_backend/internal/middleware"
	"huurly_backend/internal/models"
	"huurly_backend/internal/services"
	"huurly_backend/internal/services/dto"
	"huurly_backend/internal/validator"
	"huurly_backend/pkg/apperrors"
)

type DocumentHandler struct {
	*BaseHandler
	documentService services.DocumentService
}

func NewDocumentHandler(base *BaseHandler, documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		BaseHandler:     base,
		documentService: documentService,
	}
}

func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	docs := rg.Group("/documents")
	docs.Use(middleware.AuthMiddleware())
	{
		docs.POST("", middleware.RequireRoles(models.UserRoleHuurder), h.Upload)
		docs.GET("", middleware.RequireRoles(models.UserRoleHuurder), h.ListMine)
		docs.DELETE("/:id", middleware.RequireRoles(models.UserRoleHuurder), h.Delete)

		review := docs.Group("")
		review.Use(middleware.RequireRoles(models.UserRoleBeoordelaar, models.UserRoleBeheerder))
		{
			review.GET("/pending", h.ListPending)
			review.POST("/:id/review", h.Review)
		}
	}
}

// Upload accepts a multipart form: the file plus type and description
// fields.
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form fields: "+err.Error()))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file upload"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	resp, err := h.documentService.Upload(
		c.Request.Context(), h.GetDB(c), userID, &req,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *DocumentHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	docs, err := h.documentService.ListMine(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *DocumentHandler) ListPending(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	docs, total, err := h.documentService.ListPending(c.Request.Context(), h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": docs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *DocumentHandler) Review(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewDocumentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.documentService.Review(c.Request.Context(), h.GetDB(c), reviewerID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document verwijderd"})
}
