package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"huurly_backend/internal/algorithms"
	"huurly_backend/internal/logger"
	"huurly_backend/internal/repositories"
	"huurly_backend/internal/services/dto"
)

type SearchService interface {
	SearchTenants(ctx context.Context, db *gorm.DB, req *dto.SearchTenantsRequest) *dto.SearchTenantsResponse
}

type searchService struct {
	profileRepo repositories.TenantProfileRepository
}

func NewSearchService(profileRepo repositories.TenantProfileRepository) SearchService {
	return &searchService{profileRepo: profileRepo}
}

// SearchTenants filters candidates in the store, then scores each one
// against the criteria and sorts by total score. A store failure does
// not surface as an error: the response carries an empty result set
// with Degraded set, so callers can tell "no matches" from "search
// unavailable".
func (s *searchService) SearchTenants(ctx context.Context, db *gorm.DB, req *dto.SearchTenantsRequest) *dto.SearchTenantsResponse {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp := &dto.SearchTenantsResponse{
		Results:  []dto.TenantMatch{},
		Page:     page,
		PageSize: pageSize,
	}

	profiles, total, err := s.profileRepo.Search(db, &repositories.TenantSearchCriteria{
		City:      req.City,
		MinBudget: req.MinBudget,
		MaxBudget: req.MaxBudget,
		HasPets:   req.HasPets,
		Smokes:    req.Smokes,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		logger.CtxWithError(ctx, "Tenant search degraded, returning empty result", err)
		resp.Degraded = true
		return resp
	}

	criteria := algorithms.SearchCriteria{
		City:      req.City,
		MinBudget: req.MinBudget,
		MaxBudget: req.MaxBudget,
		Lifestyle: algorithms.LifestyleFilters{
			HasPets: req.HasPets,
			Smokes:  req.Smokes,
		},
	}

	resp.Total = total
	for i := range profiles {
		p := &profiles[i]
		score := algorithms.ComputeCompatibility(algorithms.TenantFacts{
			PreferredLocations: p.LocationPreference,
			MaxRent:            p.MaxBudget,
			HasPets:            p.HasPets,
			Smokes:             p.Smokes,
		}, criteria)
		resp.Results = append(resp.Results, dto.NewTenantMatch(p, score))
	}

	// Stable sort keeps the repository's recency order between equal
	// scores.
	sort.SliceStable(resp.Results, func(i, j int) bool {
		return resp.Results[i].Compatibility.Total > resp.Results[j].Compatibility.Total
	})

	return resp
}
