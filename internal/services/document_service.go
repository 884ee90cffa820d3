package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huurly_backend/internal/config"
	"huurly_backend/internal/imageprocessor"
	"huurly_backend/internal/logger"
	"huurly_backend/internal/models"
	"huurly_backend/internal/repositories"
	"huurly_backend/internal/services/dto"
	"huurly_backend/internal/storage"
	"huurly_backend/pkg/apperrors"
)

const signedURLExpiry = 15 * time.Minute

type DocumentService interface {
	Upload(ctx context.Context, db *gorm.DB, userID string, req *dto.UploadDocumentRequest, fileName, contentType string, size int64, reader io.Reader) (*dto.DocumentResponse, error)
	ListMine(ctx context.Context, db *gorm.DB, userID string) ([]dto.DocumentResponse, error)
	ListPending(ctx context.Context, db *gorm.DB, page, pageSize int) ([]dto.DocumentResponse, int64, error)
	Review(ctx context.Context, db *gorm.DB, reviewerID, documentID string, req *dto.ReviewDocumentRequest) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, db *gorm.DB, userID, documentID string) error
}

type documentService struct {
	documentRepo        repositories.DocumentRepository
	notificationService NotificationService
	storage             storage.Storage
	imageProc           *imageprocessor.Processor
	cfg                 *config.Config
}

func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	notificationService NotificationService,
	store storage.Storage,
	cfg *config.Config,
) DocumentService {
	return &documentService{
		documentRepo:        documentRepo,
		notificationService: notificationService,
		storage:             store,
		imageProc:           imageprocessor.NewProcessor(cfg.Upload.ImageQuality),
		cfg:                 cfg,
	}
}

// Upload validates the file, normalizes image scans and stores the
// document with status wachtend.
func (s *documentService) Upload(ctx context.Context, db *gorm.DB, userID string, req *dto.UploadDocumentRequest, fileName, contentType string, size int64, reader io.Reader) (*dto.DocumentResponse, error) {
	if size > s.cfg.Upload.MaxSize {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Bestand is te groot (max %d MB)", s.cfg.Upload.MaxSize/(1024*1024)))
	}
	if !s.typeAllowed(contentType) {
		return nil, apperrors.NewBadRequestError("Bestandstype wordt niet ondersteund")
	}

	body := reader
	if strings.HasPrefix(contentType, "image/") {
		// Re-encoding strips EXIF data from scans before they hit
		// storage.
		buf, err := io.ReadAll(reader)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		normalized, normalizedType, err := s.imageProc.NormalizeScan(bytes.NewReader(buf))
		if err != nil {
			return nil, apperrors.NewBadRequestError("Afbeelding kon niet worden verwerkt")
		}
		body = normalized
		contentType = normalizedType
	}

	path := fmt.Sprintf("documents/%s/%s%s", userID, uuid.NewString(), filepath.Ext(fileName))
	if err := s.storage.Save(ctx, path, body, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	storedSize, err := s.storage.GetSize(ctx, path)
	if err != nil {
		storedSize = size
	}

	doc := &models.Document{
		UserID:      userID,
		Type:        models.DocumentType(req.Type),
		Status:      models.DocumentStatusWachtend,
		FileName:    fileName,
		FilePath:    path,
		ContentType: contentType,
		SizeBytes:   storedSize,
		Description: req.Description,
	}
	if err := s.documentRepo.Create(db, doc); err != nil {
		_ = s.storage.Delete(ctx, path)
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Document uploaded",
		"document_id", doc.ID,
		"type", req.Type,
	)
	return s.withSignedURL(ctx, doc), nil
}

func (s *documentService) ListMine(ctx context.Context, db *gorm.DB, userID string) ([]dto.DocumentResponse, error) {
	docs, err := s.documentRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, *s.withSignedURL(ctx, &docs[i]))
	}
	return resp, nil
}

func (s *documentService) ListPending(ctx context.Context, db *gorm.DB, page, pageSize int) ([]dto.DocumentResponse, int64, error) {
	docs, total, err := s.documentRepo.FindByStatus(db, models.DocumentStatusWachtend, page, pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	resp := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, *s.withSignedURL(ctx, &docs[i]))
	}
	return resp, total, nil
}

// Review settles a pending document. Decisions are terminal: a settled
// document cannot be re-reviewed, it has to be re-uploaded. The owner
// gets a notification either way; a rejection requires a note.
func (s *documentService) Review(ctx context.Context, db *gorm.DB, reviewerID, documentID string, req *dto.ReviewDocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(db, documentID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if doc.Status != models.DocumentStatusWachtend {
		return nil, apperrors.ErrInvalidStatus("document",
			fmt.Sprintf("Document is al beoordeeld (%s)", doc.Status))
	}

	newStatus := models.DocumentStatus(req.Status)
	if newStatus == models.DocumentStatusAfgekeurd && strings.TrimSpace(req.Note) == "" {
		return nil, apperrors.NewBadRequestError("Een afkeuring vereist een toelichting")
	}

	now := time.Now()
	doc.Status = newStatus
	doc.ReviewerID = &reviewerID
	doc.ReviewNote = req.Note
	doc.ReviewedAt = &now

	if err := s.documentRepo.Update(db, doc); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyDecision(db, doc)

	logger.CtxInfo(ctx, "Document reviewed",
		"document_id", doc.ID,
		"status", string(newStatus),
	)
	return s.withSignedURL(ctx, doc), nil
}

func (s *documentService) Delete(ctx context.Context, db *gorm.DB, userID, documentID string) error {
	doc, err := s.documentRepo.FindByID(db, documentID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if doc.UserID != userID {
		return apperrors.NewForbiddenError("Document behoort niet tot deze gebruiker")
	}

	if err := s.documentRepo.Delete(db, documentID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.storage.Delete(ctx, doc.FilePath); err != nil {
		logger.CtxWithError(ctx, "Failed to delete stored file", err, "path", doc.FilePath)
	}
	return nil
}

func (s *documentService) notifyDecision(db *gorm.DB, doc *models.Document) {
	nType := models.NotificationTypeDocumentGoedgekeurd
	title := "Document goedgekeurd"
	message := fmt.Sprintf("Je %s is goedgekeurd.", doc.Type)
	if doc.Status == models.DocumentStatusAfgekeurd {
		nType = models.NotificationTypeDocumentAfgekeurd
		title = "Document afgekeurd"
		message = fmt.Sprintf("Je %s is afgekeurd: %s", doc.Type, doc.ReviewNote)
	}

	err := s.notificationService.Notify(db, doc.UserID, nType, title, message,
		map[string]string{"document_id": doc.ID})
	if err != nil {
		logger.WithError(err).Warn("Failed to notify document owner", "document_id", doc.ID)
	}
}

func (s *documentService) withSignedURL(ctx context.Context, doc *models.Document) *dto.DocumentResponse {
	url, err := s.storage.GetSignedURL(ctx, doc.FilePath, signedURLExpiry)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to sign document URL", err, "document_id", doc.ID)
		url = ""
	}
	resp := dto.NewDocumentResponse(doc, url)
	return &resp
}

func (s *documentService) typeAllowed(contentType string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
