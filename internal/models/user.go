package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Naam         string     `gorm:"not null" json:"naam"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`

	// Relations
	TenantProfile   *TenantProfile    `gorm:"foreignKey:UserID" json:"tenant_profile,omitempty"`
	LandlordProfile *LandlordProfile  `gorm:"foreignKey:UserID" json:"landlord_profile,omitempty"`
	Subscription    *UserSubscription `gorm:"foreignKey:UserID" json:"subscription,omitempty"`
	RefreshTokens   []RefreshToken    `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
