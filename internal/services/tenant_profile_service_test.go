package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huurly_backend/internal/services/dto"
	"huurly_backend/internal/validator"
	"huurly_backend/pkg/apperrors"
)

func fullWizardForm() *dto.TenantProfileRequest {
	return &dto.TenantProfileRequest{
		FirstName:     "Jan",
		LastName:      "de Vries",
		DateOfBirth:   "12/03/1990",
		Phone:         "0612345678",
		Sex:           "man",
		Nationality:   "Nederlandse",
		MaritalStatus: "single",

		Profession:       "Software engineer",
		EmploymentStatus: "full-time",
		MonthlyIncome:    3500,

		PreferredCity:         []validator.LocationEntry{{Name: "Utrecht"}},
		PreferredPropertyType: "appartement",
		MaxBudget:             1400,

		Bio:        strings.Repeat("Rustige huurder met vast contract. ", 3),
		Motivation: strings.Repeat("Op zoek naar een appartement in Utrecht. ", 3),
	}
}

func newProfileFixture() (TenantProfileService, *fakeTenantProfileRepo) {
	repo := newFakeTenantProfileRepo()
	return NewTenantProfileService(repo, validator.New()), repo
}

func TestSubmit_CompleteFormMarksProfileComplete(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileFixture()

	profile, err := svc.Submit(nil, "tenant-1", fullWizardForm())
	require.NoError(t, err)

	assert.True(t, profile.ProfileComplete)
	assert.Equal(t, []string{"Utrecht"}, []string(profile.LocationPreference))
	assert.Equal(t, 1400.0, profile.MaxBudget)
}

func TestSubmit_IncompleteFormIsRejected(t *testing.T) {
	t.Parallel()

	svc, repo := newProfileFixture()

	form := fullWizardForm()
	form.Bio = "te kort"

	_, err := svc.Submit(nil, "tenant-1", form)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// Nothing was persisted.
	_, err = repo.FindByUserID(nil, "tenant-1")
	assert.Error(t, err)
}

func TestSaveDraft_NeverGatesAndNeverCompletes(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileFixture()

	// A nearly empty snapshot is fine as a draft.
	profile, err := svc.SaveDraft(nil, "tenant-1", &dto.TenantProfileRequest{FirstName: "Jan"})
	require.NoError(t, err)
	assert.False(t, profile.ProfileComplete)
}

func TestSaveDraft_DemotesACompleteProfile(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileFixture()

	_, err := svc.Submit(nil, "tenant-1", fullWizardForm())
	require.NoError(t, err)

	form := fullWizardForm()
	form.MaxBudget = 1600
	draft, err := svc.SaveDraft(nil, "tenant-1", form)
	require.NoError(t, err)

	// Invisible to search until the next full submit.
	assert.False(t, draft.ProfileComplete)
	assert.Equal(t, 1600.0, draft.MaxBudget)

	resubmitted, err := svc.Submit(nil, "tenant-1", form)
	require.NoError(t, err)
	assert.True(t, resubmitted.ProfileComplete)
}

func TestSubmit_UpsertsExistingRow(t *testing.T) {
	t.Parallel()

	svc, repo := newProfileFixture()

	first, err := svc.Submit(nil, "tenant-1", fullWizardForm())
	require.NoError(t, err)

	form := fullWizardForm()
	form.PreferredCity = []validator.LocationEntry{{Name: "Amsterdam"}, {Name: "Haarlem"}}
	second, err := svc.Submit(nil, "tenant-1", form)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"Amsterdam", "Haarlem"}, []string(second.LocationPreference))

	stored, err := repo.FindByUserID(nil, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Amsterdam", "Haarlem"}, []string(stored.LocationPreference))
}

func TestValidateStep_ReportsWizardGate(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileFixture()

	resp := svc.ValidateStep(0, &dto.TenantProfileRequest{})
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Errors)

	resp = svc.ValidateStep(0, fullWizardForm())
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)
}
