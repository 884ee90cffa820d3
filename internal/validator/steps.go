package validator

// The profile wizard is gated per step: a step's fields must validate
// before the wizard advances past it. Steps with no required fields
// (household, guarantor, references) always pass.

// TotalSteps is the number of wizard steps.
const TotalSteps = 7

// FieldError is one failed constraint, carrying the wire field name,
// the rendered message and the localized label for the UI.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Label   string `json:"label"`
}

// LocationEntry is one preferred-city entry on the wizard form.
// lat/lng/radius are optional.
type LocationEntry struct {
	Name   string  `json:"name,omitempty"`
	Lat    float64 `json:"lat,omitempty"`
	Lng    float64 `json:"lng,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

// ProfileFormData is the full wizard snapshot. Every step validates a
// projection of this struct, so edits to shared state re-gate earlier
// steps on the next navigation attempt.
type ProfileFormData struct {
	// Step 1 — personal
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DateOfBirth   string `json:"date_of_birth"`
	Phone         string `json:"phone"`
	Sex           string `json:"sex"`
	Nationality   string `json:"nationality"`
	MaritalStatus string `json:"marital_status"`

	// Step 2 — employment
	Profession       string  `json:"profession"`
	Employer         string  `json:"employer"`
	EmploymentStatus string  `json:"employment_status"`
	MonthlyIncome    float64 `json:"monthly_income"`

	// Step 3 — household
	Partner  bool `json:"partner"`
	Children int  `json:"children"`

	// Step 4 — housing preferences
	PreferredCity         []LocationEntry `json:"preferred_city"`
	PreferredPropertyType string          `json:"preferred_property_type"`
	MinBudget             float64         `json:"min_budget"`
	MaxBudget             float64         `json:"max_budget"`
	MinRooms              int             `json:"min_rooms"`
	MaxRooms              int             `json:"max_rooms"`
	Furnished             bool            `json:"furnished"`
	LeaseDuration         string          `json:"lease_duration"`
	EarliestMoveDate      string          `json:"earliest_move_date"`
	PreferredMoveDate     string          `json:"preferred_move_date"`
	FlexibleMoveDate      bool            `json:"flexible_move_date"`

	// Step 5 — guarantor
	GuarantorAvailable bool    `json:"guarantor_available"`
	GuarantorName      string  `json:"guarantor_name"`
	GuarantorPhone     string  `json:"guarantor_phone"`
	GuarantorIncome    float64 `json:"guarantor_income"`
	GuarantorRelation  string  `json:"guarantor_relation"`

	// Step 6 — references / emergency contact
	EmergencyContactName     string `json:"emergency_contact_name"`
	EmergencyContactPhone    string `json:"emergency_contact_phone"`
	EmergencyContactRelation string `json:"emergency_contact_relation"`

	// Lifestyle
	HasPets bool `json:"huisdieren"`
	Smokes  bool `json:"roken"`

	// Step 7 — profile & motivation
	Bio             string `json:"bio"`
	Motivation      string `json:"motivation"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}

// Per-step projections. Only constrained fields appear; json tags must
// match ProfileFormData so error field names line up with the wire.

type stepPersonal struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	DateOfBirth   string `json:"date_of_birth" validate:"required,birthdate"`
	Phone         string `json:"phone" validate:"required,min=10"`
	Sex           string `json:"sex" validate:"required,oneof=man vrouw anders zeg_ik_liever_niet"`
	Nationality   string `json:"nationality" validate:"required"`
	MaritalStatus string `json:"marital_status" validate:"required,oneof=single samenwonend getrouwd gescheiden"`
}

type stepEmployment struct {
	Profession       string  `json:"profession" validate:"required"`
	EmploymentStatus string  `json:"employment_status" validate:"required,oneof=full-time part-time zzp student werkloos"`
	MonthlyIncome    float64 `json:"monthly_income" validate:"required,gt=0"`
}

type stepHousing struct {
	PreferredCity         []LocationEntry `json:"preferred_city" validate:"min=1"`
	PreferredPropertyType string          `json:"preferred_property_type" validate:"required,oneof=appartement huis studio kamer penthouse"`
	MaxBudget             float64         `json:"max_budget" validate:"required,gt=0"`
}

type stepMotivation struct {
	Bio        string `json:"bio" validate:"required,min=50,max=500"`
	Motivation string `json:"motivation" validate:"required,min=50,max=500"`
}

// ValidateStep validates one step (0-based) against the form snapshot.
// An empty slice means the step passes. Unknown step indexes pass.
func (v *Validator) ValidateStep(step int, data *ProfileFormData) []FieldError {
	if data == nil {
		data = &ProfileFormData{}
	}

	var target interface{}
	switch step {
	case 0:
		target = stepPersonal{
			FirstName:     data.FirstName,
			LastName:      data.LastName,
			DateOfBirth:   data.DateOfBirth,
			Phone:         data.Phone,
			Sex:           data.Sex,
			Nationality:   data.Nationality,
			MaritalStatus: data.MaritalStatus,
		}
	case 1:
		target = stepEmployment{
			Profession:       data.Profession,
			EmploymentStatus: data.EmploymentStatus,
			MonthlyIncome:    data.MonthlyIncome,
		}
	case 3:
		target = stepHousing{
			PreferredCity:         data.PreferredCity,
			PreferredPropertyType: data.PreferredPropertyType,
			MaxBudget:             data.MaxBudget,
		}
	case 6:
		target = stepMotivation{
			Bio:        data.Bio,
			Motivation: data.Motivation,
		}
	default:
		// Steps 3, 5 and 6 (1-based) have no required fields.
		return nil
	}

	var errs []FieldError
	for _, fe := range v.structErrors(target) {
		errs = append(errs, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Label:   FieldLabel(fe.Field()),
		})
	}
	return errs
}

// ValidateAllSteps runs every step against the snapshot, used to gate
// the final submit.
func (v *Validator) ValidateAllSteps(data *ProfileFormData) []FieldError {
	var errs []FieldError
	for step := 0; step < TotalSteps; step++ {
		errs = append(errs, v.ValidateStep(step, data)...)
	}
	return errs
}
