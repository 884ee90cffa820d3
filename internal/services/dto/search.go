package dto

import (
	"huurly_backend/internal/algorithms"
	"huurly_backend/internal/models"
)

// SearchTenantsRequest carries the landlord's search form. Lifestyle
// flags are tri-state: absent means unconstrained.
type SearchTenantsRequest struct {
	City      string   `form:"city" json:"city"`
	MinBudget *float64 `form:"min_budget" json:"min_budget" validate:"omitempty,gte=0"`
	MaxBudget *float64 `form:"max_budget" json:"max_budget" validate:"omitempty,gte=0"`
	HasPets   *bool    `form:"huisdieren" json:"huisdieren"`
	Smokes    *bool    `form:"roken" json:"roken"`
	Page      int      `form:"page" json:"page" validate:"omitempty,gte=1"`
	PageSize  int      `form:"page_size" json:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// TenantMatch is one scored candidate. The profile is trimmed to what
// a landlord may see before contact.
type TenantMatch struct {
	ProfileID     string                         `json:"profile_id"`
	FirstName     string                         `json:"first_name"`
	City          []string                       `json:"locatie_voorkeur"`
	MaxBudget     float64                        `json:"max_huur"`
	HasPets       bool                           `json:"huisdieren"`
	Smokes        bool                           `json:"roken"`
	Bio           string                         `json:"bio"`
	Compatibility algorithms.CompatibilityResult `json:"compatibility"`
}

// SearchTenantsResponse is the facade result. Degraded is set when the
// backend query failed and Results is an explicit empty fallback,
// distinguishing "no matches" from "search unavailable".
type SearchTenantsResponse struct {
	Results  []TenantMatch `json:"results"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Degraded bool          `json:"degraded"`
}

// NewTenantMatch builds the public view of a scored profile.
func NewTenantMatch(p *models.TenantProfile, score algorithms.CompatibilityResult) TenantMatch {
	return TenantMatch{
		ProfileID:     p.ID,
		FirstName:     p.FirstName,
		City:          p.LocationPreference,
		MaxBudget:     p.MaxBudget,
		HasPets:       p.HasPets,
		Smokes:        p.Smokes,
		Bio:           p.Bio,
		Compatibility: score,
	}
}
