package models

import "time"

// Document is an uploaded verification document. Lifecycle: a huurder
// uploads it (wachtend), a beoordelaar approves or rejects it.
type Document struct {
	BaseModel
	UserID      string         `gorm:"not null;index" json:"user_id"`
	Type        DocumentType   `gorm:"type:varchar(40);not null" json:"type"`
	Status      DocumentStatus `gorm:"type:varchar(20);default:'wachtend';index" json:"status"`
	FileName    string         `gorm:"not null" json:"file_name"`
	FilePath    string         `gorm:"not null" json:"file_path"`
	ContentType string         `json:"content_type"`
	SizeBytes   int64          `json:"size_bytes"`
	Description string         `json:"description"`

	// Review outcome
	ReviewerID *string    `gorm:"index" json:"reviewer_id,omitempty"`
	ReviewNote string     `json:"review_note,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}
