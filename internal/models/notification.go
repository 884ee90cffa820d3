package models

import "gorm.io/datatypes"

type Notification struct {
	BaseModel
	UserID  string           `gorm:"not null;index" json:"user_id"`
	Type    NotificationType `gorm:"type:varchar(40);not null" json:"type"`
	Title   string           `gorm:"not null" json:"title"`
	Message string           `json:"message"`
	Payload datatypes.JSON   `gorm:"type:jsonb" json:"payload,omitempty"` // e.g. {"document_id": "..."}
	IsRead  bool             `gorm:"default:false;index" json:"is_read"`
}
