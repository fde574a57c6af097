package matching

import (
	"fmt"
	"time"

	"purposee_server/models"
)

// Score weights. Boost dwarfs every other factor on purpose so paid boosts
// always sort first while active.
const (
	boostWeight       = 1000
	likedViewerWeight = 500
	sharedGoalWeight  = 100
	perSharedValue    = 20
	perSharedInterest = 10
	sameDenomWeight   = 5
	sameFreqWeight    = 5
	proximityWeight   = 5
	proximityRadiusKm = 10
)

// reasonCandidate is one scoring rule's contribution. Rules without display
// text record an empty Text and never become the shown reason.
type reasonCandidate struct {
	Weight int
	Text   string
}

// scoreCandidate computes the compatibility score for one candidate and picks
// the reason text of the highest-weight contributing rule. Evaluation order
// breaks weight ties: the first rule recorded at a given weight wins.
func scoreCandidate(viewer, candidate models.Profile, inter Interactions, now time.Time) (int, string) {
	score := 0
	var reasons []reasonCandidate

	if candidate.BoostActiveAt(now) {
		score += boostWeight
	}

	if inter.likedViewer(candidate.UserID) {
		score += likedViewerWeight
		reasons = append(reasons, reasonCandidate{
			Weight: likedViewerWeight,
			Text:   fmt.Sprintf("%s curtiu você!", candidate.Name),
		})
	}

	if viewer.RelationshipGoal != "" && viewer.RelationshipGoal == candidate.RelationshipGoal {
		score += sharedGoalWeight
		reasons = append(reasons, reasonCandidate{
			Weight: sharedGoalWeight,
			Text:   fmt.Sprintf("Ambos buscam %s", candidate.RelationshipGoal),
		})
	}

	if shared := intersect(viewer.KeyValues, candidate.KeyValues); len(shared) > 0 {
		score += len(shared) * perSharedValue
		// The +1 nudges a values reason ahead of an interests reason of equal
		// raw weight. Asserted product behavior, keep it.
		reasons = append(reasons, reasonCandidate{
			Weight: len(shared)*perSharedValue + 1,
			Text:   fmt.Sprintf("Vocês dois valorizam %s", shared[0]),
		})
	}

	if shared := intersect(viewer.Interests, candidate.Interests); len(shared) > 0 {
		score += len(shared) * perSharedInterest
		reasons = append(reasons, reasonCandidate{
			Weight: len(shared) * perSharedInterest,
			Text:   fmt.Sprintf("Interesse em comum: %s", shared[0]),
		})
	}

	if viewer.Denomination != "" && viewer.Denomination == candidate.Denomination {
		score += sameDenomWeight
	}

	if viewer.ChurchFrequency != "" && viewer.ChurchFrequency == candidate.ChurchFrequency {
		score += sameFreqWeight
	}

	if viewer.HasLocation() && candidate.HasLocation() &&
		DistanceKm(*viewer.Latitude, *viewer.Longitude, *candidate.Latitude, *candidate.Longitude) < proximityRadiusKm {
		score += proximityWeight
	}

	return score, topReason(reasons)
}

// topReason picks the highest-weight reason text; the first recorded entry
// wins on ties.
func topReason(reasons []reasonCandidate) string {
	best := reasonCandidate{Weight: 0}
	for _, r := range reasons {
		if r.Weight > best.Weight {
			best = r
		}
	}
	return best.Text
}

// intersect returns the elements of a that also appear in b, preserving a's
// order so "first shared" is deterministic.
func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	var shared []string
	for _, v := range a {
		if _, ok := set[v]; ok {
			shared = append(shared, v)
		}
	}
	return shared
}
