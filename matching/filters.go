package matching

import (
	"strings"

	"purposee_server/models"
)

// eligible applies the hard exclusion rules. Every rule is independent; a
// single hit removes the candidate from the pool.
func eligible(viewer, candidate models.Profile, filters models.FilterState, inter Interactions) bool {
	if !candidate.HasPhoto() {
		return false
	}
	if inter.viewerLiked(candidate.UserID) || inter.viewerPassed(candidate.UserID) {
		return false
	}
	// Invisible profiles stay hidden unless the viewer already liked them.
	// Since liked candidates are excluded above, an invisible profile never
	// enters a fresh deck; kept as-is pending product clarification.
	if candidate.IsInvisibleMode && !inter.viewerLiked(candidate.UserID) {
		return false
	}
	if candidate.IsPaused {
		return false
	}
	if !viewer.Seeks(candidate.Gender) {
		return false
	}
	if viewer.HasLocation() {
		if !candidate.HasLocation() {
			return false
		}
		if filters.Distance > 0 &&
			DistanceKm(*viewer.Latitude, *viewer.Longitude, *candidate.Latitude, *candidate.Longitude) > filters.Distance {
			return false
		}
	}
	return true
}

// passesPremiumFilters applies the advanced filters. Callers gate on the
// viewer's premium entitlement; each predicate only fires when its filter
// field is set.
func passesPremiumFilters(candidate models.Profile, filters models.FilterState) bool {
	if len(filters.Denominations) > 0 && !contains(filters.Denominations, candidate.Denomination) {
		return false
	}
	if churchName := strings.TrimSpace(filters.ChurchName); churchName != "" {
		if !strings.Contains(strings.ToLower(candidate.ChurchName), strings.ToLower(churchName)) {
			return false
		}
	}
	if len(filters.ChurchFrequencies) > 0 && !contains(filters.ChurchFrequencies, candidate.ChurchFrequency) {
		return false
	}
	if len(filters.RelationshipGoals) > 0 && !contains(filters.RelationshipGoals, candidate.RelationshipGoal) {
		return false
	}
	if filters.VerifiedOnly && !candidate.IsVerified {
		return false
	}
	return true
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
