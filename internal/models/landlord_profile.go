package models

// LandlordProfile is the verhuurder profile.
type LandlordProfile struct {
	BaseModel
	UserID        string `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	CompanyName   string `gorm:"column:bedrijfsnaam" json:"company_name"`
	PropertyCount int    `gorm:"column:aantal_woningen" json:"property_count"`
	Description   string `gorm:"column:beschrijving" json:"description"`
	Website       string `gorm:"column:website" json:"website"`
	IsVerified    bool   `gorm:"default:false" json:"is_verified"`
}

func (LandlordProfile) TableName() string {
	return "verhuurders"
}
