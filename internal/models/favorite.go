package models

// FavoriteProfile links a verhuurder to a saved huurder profile.
type FavoriteProfile struct {
	BaseModel
	LandlordID string `gorm:"column:verhuurder_id;not null;index;uniqueIndex:idx_favorite_pair" json:"verhuurder_id"`
	TenantID   string `gorm:"column:huurder_id;not null;uniqueIndex:idx_favorite_pair" json:"huurder_id"`
}

func (FavoriteProfile) TableName() string {
	return "favoriete_profielen"
}
