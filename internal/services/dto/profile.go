package dto

import "huurly_backend/internal/validator"

// TenantProfileRequest is the full wizard snapshot as submitted. The
// validator's form type already carries the wire tags.
type TenantProfileRequest = validator.ProfileFormData

type LandlordProfileRequest struct {
	CompanyName   string `json:"company_name" validate:"required,min=2"`
	PropertyCount int    `json:"property_count" validate:"gte=0"`
	Description   string `json:"description" validate:"max=1000"`
	Website       string `json:"website" validate:"omitempty,url"`
}

// StepValidationRequest asks whether one wizard step passes against
// the submitted snapshot.
type StepValidationRequest struct {
	Step int                        `json:"step" validate:"gte=0,lt=7"`
	Data *validator.ProfileFormData `json:"data" validate:"required"`
}

type StepValidationResponse struct {
	Step   int                    `json:"step"`
	Valid  bool                   `json:"valid"`
	Errors []validator.FieldError `json:"errors,omitempty"`
}
