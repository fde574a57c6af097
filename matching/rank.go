package matching

import (
	"sort"
	"time"

	"purposee_server/models"
)

// RankedCandidate pairs a surviving candidate with its compatibility score and
// the human-readable reason for its top-contributing factor.
type RankedCandidate struct {
	Profile models.Profile `json:"profile"`
	Score   int            `json:"score"`
	Reason  string         `json:"reason"`
}

// Interactions carries the viewer's swipe history into a ranking run.
// Nil sets are treated as empty.
type Interactions struct {
	LikedByViewer  map[string]struct{} // candidates the viewer already liked
	PassedByViewer map[string]struct{} // candidates the viewer already passed on
	LikedViewer    map[string]struct{} // users who liked the viewer
}

func (in Interactions) viewerLiked(id string) bool {
	_, ok := in.LikedByViewer[id]
	return ok
}

func (in Interactions) viewerPassed(id string) bool {
	_, ok := in.PassedByViewer[id]
	return ok
}

func (in Interactions) likedViewer(id string) bool {
	_, ok := in.LikedViewer[id]
	return ok
}

// RankCandidates filters and orders the candidate pool for a viewer.
//
// It is a pure function of its arguments: no I/O, no retained state, safe for
// concurrent calls. The caller persists the resulting order and resets its
// deck cursor to the top whenever it recomputes.
//
// Candidates are dropped by the eligibility rules (missing photo, prior
// interaction, invisible mode, paused, gender direction, distance), then by
// the viewer's premium filters, then scored and sorted descending. The sort is
// stable, so equal scores keep pool order. Boosted profiles carry a dominant
// score term and always surface first.
func RankCandidates(viewer models.Profile, pool []models.Profile, filters models.FilterState, inter Interactions, now time.Time) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(pool))
	for _, candidate := range pool {
		if !eligible(viewer, candidate, filters, inter) {
			continue
		}
		if viewer.IsPremium && !passesPremiumFilters(candidate, filters) {
			continue
		}
		score, reason := scoreCandidate(viewer, candidate, inter, now)
		ranked = append(ranked, RankedCandidate{Profile: candidate, Score: score, Reason: reason})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
