package models

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// TenantProfile is the huurder profile built by the 7-step wizard.
// Column names keep the Dutch schema the platform's store has always used.
type TenantProfile struct {
	BaseModel
	UserID string `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`

	// Step 1 — personal
	FirstName     string `gorm:"column:voornaam" json:"first_name"`
	LastName      string `gorm:"column:achternaam" json:"last_name"`
	DateOfBirth   string `gorm:"column:geboortedatum" json:"date_of_birth"` // dd/mm/yyyy
	Phone         string `gorm:"column:telefoon" json:"phone"`
	Sex           string `gorm:"column:geslacht" json:"sex"`
	Nationality   string `gorm:"column:nationaliteit" json:"nationality"`
	MaritalStatus string `gorm:"column:burgerlijke_staat" json:"marital_status"`

	// Step 2 — employment
	Profession           string  `gorm:"column:beroep" json:"profession"`
	Employer             string  `gorm:"column:werkgever" json:"employer"`
	EmploymentStatus     string  `gorm:"column:dienstverband" json:"employment_status"`
	MonthlyIncome        float64 `gorm:"column:inkomen" json:"monthly_income"`
	IncomeProofAvailable bool    `gorm:"column:inkomensbewijs_beschikbaar" json:"income_proof_available"`

	// Step 3 — household
	Partner  bool `gorm:"column:partner" json:"partner"`
	Children int  `gorm:"column:kinderen" json:"children"`

	// Step 4 — housing preferences
	LocationPreference pq.StringArray `gorm:"column:locatie_voorkeur;type:text[]" json:"locatie_voorkeur"`
	PreferredCities    datatypes.JSON `gorm:"column:voorkeurssteden;type:jsonb" json:"preferred_city"` // []LocationData
	PropertyType       string         `gorm:"column:woningtype" json:"preferred_property_type"`
	MinBudget          float64        `gorm:"column:min_huur" json:"min_budget"`
	MaxBudget          float64        `gorm:"column:max_huur" json:"max_huur"`
	MinRooms           int            `gorm:"column:min_kamers" json:"min_rooms"`
	MaxRooms           int            `gorm:"column:max_kamers" json:"max_rooms"`
	Furnished          bool           `gorm:"column:gemeubileerd" json:"furnished"`
	LeaseDuration      string         `gorm:"column:huurperiode" json:"lease_duration"`

	// Timing
	EarliestMoveDate  string `gorm:"column:vroegste_verhuisdatum" json:"earliest_move_date"`
	PreferredMoveDate string `gorm:"column:voorkeur_verhuisdatum" json:"preferred_move_date"`
	FlexibleMoveDate  bool   `gorm:"column:beschikbaarheid_flexibel" json:"flexible_move_date"`

	// Step 5 — guarantor
	GuarantorAvailable bool    `gorm:"column:borgsteller_beschikbaar" json:"guarantor_available"`
	GuarantorName      string  `gorm:"column:borgsteller_naam" json:"guarantor_name"`
	GuarantorPhone     string  `gorm:"column:borgsteller_telefoon" json:"guarantor_phone"`
	GuarantorIncome    float64 `gorm:"column:borgsteller_inkomen" json:"guarantor_income"`
	GuarantorRelation  string  `gorm:"column:borgsteller_relatie" json:"guarantor_relation"`

	// Step 6 — references / emergency contact
	EmergencyContactName     string `gorm:"column:noodcontact_naam" json:"emergency_contact_name"`
	EmergencyContactPhone    string `gorm:"column:noodcontact_telefoon" json:"emergency_contact_phone"`
	EmergencyContactRelation string `gorm:"column:noodcontact_relatie" json:"emergency_contact_relation"`

	// Lifestyle
	HasPets bool `gorm:"column:huisdieren" json:"huisdieren"`
	Smokes  bool `gorm:"column:roken" json:"roken"`

	// Step 7 — profile
	Bio             string `gorm:"column:beschrijving" json:"bio"`
	Motivation      string `gorm:"column:motivatie" json:"motivation"`
	ProfilePhotoURL string `gorm:"column:profielfoto_url" json:"profile_photo_url"`

	// Soft completion flag; profiles are never hard-deleted.
	ProfileComplete bool `gorm:"column:profiel_compleet;default:false" json:"profiel_compleet"`
}

func (TenantProfile) TableName() string {
	return "huurders"
}

// LocationData is one preferred-city entry. lat/lng/radius are collected
// by the wizard but currently unused by the location axis of the scorer.
type LocationData struct {
	Name   string  `json:"name,omitempty"`
	Lat    float64 `json:"lat,omitempty"`
	Lng    float64 `json:"lng,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

// GetPreferredCities decodes the jsonb preferred-city entries.
func (p *TenantProfile) GetPreferredCities() []LocationData {
	var cities []LocationData
	if len(p.PreferredCities) > 0 {
		_ = json.Unmarshal(p.PreferredCities, &cities)
	}
	return cities
}
