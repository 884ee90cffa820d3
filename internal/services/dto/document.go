package dto

import (
	"time"

	"huurly_backend/internal/models"
)

type UploadDocumentRequest struct {
	Type        string `form:"type" validate:"required,oneof=identiteitsbewijs inkomensverklaring werkgeversverklaring bankafschrift huurgarantie overig"`
	Description string `form:"description" validate:"max=500"`
}

type ReviewDocumentRequest struct {
	Status string `json:"status" validate:"required,oneof=goedgekeurd afgekeurd"`
	Note   string `json:"note" validate:"max=1000"`
}

// DocumentResponse exposes a document with a short-lived signed URL
// instead of the raw storage path.
type DocumentResponse struct {
	ID          string                `json:"id"`
	Type        models.DocumentType   `json:"type"`
	Status      models.DocumentStatus `json:"status"`
	FileName    string                `json:"file_name"`
	ContentType string                `json:"content_type"`
	SizeBytes   int64                 `json:"size_bytes"`
	Description string                `json:"description"`
	ReviewNote  string                `json:"review_note,omitempty"`
	ReviewedAt  *time.Time            `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	SignedURL   string                `json:"signed_url,omitempty"`
}

func NewDocumentResponse(d *models.Document, signedURL string) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		Type:        d.Type,
		Status:      d.Status,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		Description: d.Description,
		ReviewNote:  d.ReviewNote,
		ReviewedAt:  d.ReviewedAt,
		CreatedAt:   d.CreatedAt,
		SignedURL:   signedURL,
	}
}
