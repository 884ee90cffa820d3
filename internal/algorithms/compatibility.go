package algorithms

import "math"

// LifestyleFilters are the optional lifestyle flags of a search.
// A nil field means the searcher did not constrain that flag.
type LifestyleFilters struct {
	HasPets *bool `json:"huisdieren,omitempty"`
	Smokes  *bool `json:"roken,omitempty"`
}

// SearchCriteria is the per-search value object. It is never persisted.
type SearchCriteria struct {
	City      string           `json:"city,omitempty"`
	MinBudget *float64         `json:"min_budget,omitempty"`
	MaxBudget *float64         `json:"max_budget,omitempty"`
	Lifestyle LifestyleFilters `json:"lifestyle"`
}

// TenantFacts is the slice of a tenant profile the scorer reads. Callers
// convert store rows into this type at the boundary; missing profile
// fields default to zero values rather than erroring.
type TenantFacts struct {
	PreferredLocations []string
	MaxRent            float64
	HasPets            bool
	Smokes             bool
}

// CompatibilityResult decomposes a match into three axes so a UI can
// explain why a candidate scored the way it did. All values are 0-100.
type CompatibilityResult struct {
	Location  int `json:"location"`
	Budget    int `json:"budget"`
	Lifestyle int `json:"lifestyle"`
	Total     int `json:"total"`
}

// ComputeCompatibility scores one tenant against one set of criteria.
// Axes the criteria leave unconstrained score 0, not 100 — longstanding
// platform behavior that ranking depends on.
func ComputeCompatibility(tenant TenantFacts, criteria SearchCriteria) CompatibilityResult {
	// Location: binary city membership. Geo radius data on the profile
	// is intentionally not consulted here.
	location := 0.0
	if criteria.City != "" {
		for _, city := range tenant.PreferredLocations {
			if city == criteria.City {
				location = 100
				break
			}
		}
	}

	// Budget: 100 inside the window, linear decay against the criteria
	// maximum outside it.
	budget := 0.0
	if criteria.MinBudget != nil || criteria.MaxBudget != nil {
		maxRent := tenant.MaxRent
		inRange := (criteria.MinBudget == nil || maxRent >= *criteria.MinBudget) &&
			(criteria.MaxBudget == nil || maxRent <= *criteria.MaxBudget)
		switch {
		case inRange:
			budget = 100
		case criteria.MaxBudget != nil && *criteria.MaxBudget > 0:
			diff := math.Abs(maxRent - *criteria.MaxBudget)
			budget = math.Max(0, 100-diff / *criteria.MaxBudget*100)
		}
	}

	// Lifestyle: match rate over whichever flags the criteria specify.
	lifestyleCount := 0
	lifestyleHits := 0
	if criteria.Lifestyle.HasPets != nil {
		lifestyleCount++
		if tenant.HasPets == *criteria.Lifestyle.HasPets {
			lifestyleHits++
		}
	}
	if criteria.Lifestyle.Smokes != nil {
		lifestyleCount++
		if tenant.Smokes == *criteria.Lifestyle.Smokes {
			lifestyleHits++
		}
	}
	lifestyle := 0.0
	if lifestyleCount > 0 {
		lifestyle = float64(lifestyleHits) / float64(lifestyleCount) * 100
	}

	// Each axis is rounded before averaging so the sub-scores a UI shows
	// stay consistent with the total built from them.
	loc := int(math.Round(location))
	bud := int(math.Round(budget))
	life := int(math.Round(lifestyle))
	total := int(math.Round(float64(loc+bud+life) / 3.0))

	return CompatibilityResult{
		Location:  loc,
		Budget:    bud,
		Lifestyle: life,
		Total:     total,
	}
}
