package services

import (
	"encoding/json"
	"errors"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"huurly_backend/internal/models"
	"huurly_backend/internal/repositories"
	"huurly_backend/internal/services/dto"
	"huurly_backend/internal/validator"
	"huurly_backend/pkg/apperrors"
)

type TenantProfileService interface {
	SaveDraft(db *gorm.DB, userID string, form *dto.TenantProfileRequest) (*models.TenantProfile, error)
	Submit(db *gorm.DB, userID string, form *dto.TenantProfileRequest) (*models.TenantProfile, error)
	GetByUserID(db *gorm.DB, userID string) (*models.TenantProfile, error)
	ValidateStep(step int, form *dto.TenantProfileRequest) *dto.StepValidationResponse
}

type tenantProfileService struct {
	profileRepo repositories.TenantProfileRepository
	validator   *validator.Validator
}

func NewTenantProfileService(
	profileRepo repositories.TenantProfileRepository,
	v *validator.Validator,
) TenantProfileService {
	return &tenantProfileService{
		profileRepo: profileRepo,
		validator:   v,
	}
}

// SaveDraft persists whatever the wizard has so far without gating.
// Drafts never flip the completion flag.
func (s *tenantProfileService) SaveDraft(db *gorm.DB, userID string, form *dto.TenantProfileRequest) (*models.TenantProfile, error) {
	return s.upsert(db, userID, form, false)
}

// Submit runs every wizard step against the snapshot and only persists
// when all of them pass. A successful submit marks the profile complete,
// which makes it visible to landlord search.
func (s *tenantProfileService) Submit(db *gorm.DB, userID string, form *dto.TenantProfileRequest) (*models.TenantProfile, error) {
	if fieldErrs := s.validator.ValidateAllSteps(form); len(fieldErrs) > 0 {
		return nil, apperrors.ValidationError(fieldErrs)
	}
	return s.upsert(db, userID, form, true)
}

func (s *tenantProfileService) GetByUserID(db *gorm.DB, userID string) (*models.TenantProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// ValidateStep checks a single step (0-based) against the snapshot so
// the wizard can gate navigation server-side.
func (s *tenantProfileService) ValidateStep(step int, form *dto.TenantProfileRequest) *dto.StepValidationResponse {
	fieldErrs := s.validator.ValidateStep(step, form)
	return &dto.StepValidationResponse{
		Step:   step,
		Valid:  len(fieldErrs) == 0,
		Errors: fieldErrs,
	}
}

func (s *tenantProfileService) upsert(db *gorm.DB, userID string, form *dto.TenantProfileRequest, complete bool) (*models.TenantProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	isNew := profile == nil
	if isNew {
		profile = &models.TenantProfile{UserID: userID}
	}

	if err := applyForm(profile, form); err != nil {
		return nil, apperrors.InternalError(err)
	}
	// A draft save always demotes the profile until the next full submit.
	profile.ProfileComplete = complete

	if isNew {
		err = s.profileRepo.Create(db, profile)
	} else {
		err = s.profileRepo.Update(db, profile)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// applyForm copies the wizard snapshot onto the store row. City names
// are mirrored into the flat locatie_voorkeur array the search and the
// scorer read.
func applyForm(p *models.TenantProfile, form *dto.TenantProfileRequest) error {
	p.FirstName = form.FirstName
	p.LastName = form.LastName
	p.DateOfBirth = form.DateOfBirth
	p.Phone = form.Phone
	p.Sex = form.Sex
	p.Nationality = form.Nationality
	p.MaritalStatus = form.MaritalStatus

	p.Profession = form.Profession
	p.Employer = form.Employer
	p.EmploymentStatus = form.EmploymentStatus
	p.MonthlyIncome = form.MonthlyIncome

	p.Partner = form.Partner
	p.Children = form.Children

	cities := make(pq.StringArray, 0, len(form.PreferredCity))
	for _, entry := range form.PreferredCity {
		if entry.Name != "" {
			cities = append(cities, entry.Name)
		}
	}
	p.LocationPreference = cities

	raw, err := json.Marshal(form.PreferredCity)
	if err != nil {
		return err
	}
	p.PreferredCities = datatypes.JSON(raw)

	p.PropertyType = form.PreferredPropertyType
	p.MinBudget = form.MinBudget
	p.MaxBudget = form.MaxBudget
	p.MinRooms = form.MinRooms
	p.MaxRooms = form.MaxRooms
	p.Furnished = form.Furnished
	p.LeaseDuration = form.LeaseDuration
	p.EarliestMoveDate = form.EarliestMoveDate
	p.PreferredMoveDate = form.PreferredMoveDate
	p.FlexibleMoveDate = form.FlexibleMoveDate

	p.GuarantorAvailable = form.GuarantorAvailable
	p.GuarantorName = form.GuarantorName
	p.GuarantorPhone = form.GuarantorPhone
	p.GuarantorIncome = form.GuarantorIncome
	p.GuarantorRelation = form.GuarantorRelation

	p.EmergencyContactName = form.EmergencyContactName
	p.EmergencyContactPhone = form.EmergencyContactPhone
	p.EmergencyContactRelation = form.EmergencyContactRelation

	p.HasPets = form.HasPets
	p.Smokes = form.Smokes

	p.Bio = form.Bio
	p.Motivation = form.Motivation
	p.ProfilePhotoURL = form.ProfilePhotoURL

	return nil
}
