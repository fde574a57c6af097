package matching

import (
	"testing"
	"time"

	"purposee_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func photo(url string) *string { return &url }

func coord(v float64) *float64 { return &v }

func idSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func testViewer() models.Profile {
	return models.Profile{
		UserID:    "viewer",
		Name:      "João",
		Gender:    models.GenderHomem,
		Seeking:   []string{models.GenderMulher},
		Latitude:  coord(0),
		Longitude: coord(0),
	}
}

// testCandidate is eligible for testViewer under default filters: female,
// one photo, ~11 km away.
func testCandidate(id string) models.Profile {
	return models.Profile{
		UserID:    id,
		Name:      "Maria",
		Gender:    models.GenderMulher,
		Photos:    []*string{photo("photos/" + id + ".jpg")},
		Latitude:  coord(0),
		Longitude: coord(0.1),
	}
}

func rankIDs(ranked []RankedCandidate) []string {
	ids := make([]string, 0, len(ranked))
	for _, rc := range ranked {
		ids = append(ids, rc.Profile.UserID)
	}
	return ids
}

func TestRankCandidates_ExcludesProfilesWithoutPhotos(t *testing.T) {
	noPhotos := testCandidate("a")
	noPhotos.Photos = nil
	nullPhotos := testCandidate("b")
	nullPhotos.Photos = []*string{nil, nil}
	kept := testCandidate("c")

	ranked := RankCandidates(testViewer(), []models.Profile{noPhotos, nullPhotos, kept},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	assert.Equal(t, []string{"c"}, rankIDs(ranked))
}

func TestRankCandidates_ExcludesPriorInteractions(t *testing.T) {
	liked := testCandidate("liked")
	passed := testCandidate("passed")
	fresh := testCandidate("fresh")

	ranked := RankCandidates(testViewer(), []models.Profile{liked, passed, fresh},
		models.DefaultFilterState("viewer"),
		Interactions{LikedByViewer: idSet("liked"), PassedByViewer: idSet("passed")}, testNow)

	assert.Equal(t, []string{"fresh"}, rankIDs(ranked))
}

func TestRankCandidates_ExcludesInvisibleAndPaused(t *testing.T) {
	invisible := testCandidate("invisible")
	invisible.IsInvisibleMode = true
	paused := testCandidate("paused")
	paused.IsPaused = true
	kept := testCandidate("kept")

	ranked := RankCandidates(testViewer(), []models.Profile{invisible, paused, kept},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	assert.Equal(t, []string{"kept"}, rankIDs(ranked))
}

func TestRankCandidates_GenderDirection(t *testing.T) {
	// Candidacy follows the viewer's seeking set only; the candidate's own
	// seeking set is irrelevant.
	male := testCandidate("male")
	male.Gender = models.GenderHomem
	female := testCandidate("female")
	female.Seeking = []string{models.GenderMulher} // does not seek the viewer back

	ranked := RankCandidates(testViewer(), []models.Profile{male, female},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	assert.Equal(t, []string{"female"}, rankIDs(ranked))
}

func TestRankCandidates_DistanceFilter(t *testing.T) {
	atBoundary := testCandidate("at-boundary")
	atBoundary.Longitude = coord(0.9) // 100 km, inclusive boundary
	beyond := testCandidate("beyond")
	beyond.Longitude = coord(0.91) // 101 km
	noLocation := testCandidate("no-location")
	noLocation.Latitude = nil
	noLocation.Longitude = nil

	ranked := RankCandidates(testViewer(), []models.Profile{atBoundary, beyond, noLocation},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	assert.Equal(t, []string{"at-boundary"}, rankIDs(ranked))
}

func TestRankCandidates_ViewerWithoutLocationSkipsDistance(t *testing.T) {
	viewer := testViewer()
	viewer.Latitude = nil
	viewer.Longitude = nil

	farAway := testCandidate("far")
	farAway.Latitude = coord(40)
	farAway.Longitude = coord(70)
	noLocation := testCandidate("nowhere")
	noLocation.Latitude = nil
	noLocation.Longitude = nil

	ranked := RankCandidates(viewer, []models.Profile{farAway, noLocation},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	assert.ElementsMatch(t, []string{"far", "nowhere"}, rankIDs(ranked))
}

func TestRankCandidates_PremiumFiltersIgnoredWithoutEntitlement(t *testing.T) {
	unverified := testCandidate("unverified")

	filters := models.DefaultFilterState("viewer")
	filters.VerifiedOnly = true

	ranked := RankCandidates(testViewer(), []models.Profile{unverified}, filters, Interactions{}, testNow)
	assert.Equal(t, []string{"unverified"}, rankIDs(ranked))

	premiumViewer := testViewer()
	premiumViewer.IsPremium = true

	ranked = RankCandidates(premiumViewer, []models.Profile{unverified}, filters, Interactions{}, testNow)
	assert.Empty(t, ranked)
}

func TestRankCandidates_PremiumChurchNameFilter(t *testing.T) {
	viewer := testViewer()
	viewer.IsPremium = true

	matching := testCandidate("matching")
	matching.ChurchName = "Igreja Batista Central"
	other := testCandidate("other")
	other.ChurchName = "Assembleia de Deus"

	filters := models.DefaultFilterState("viewer")
	filters.ChurchName = "  batista "

	ranked := RankCandidates(viewer, []models.Profile{matching, other}, filters, Interactions{}, testNow)
	assert.Equal(t, []string{"matching"}, rankIDs(ranked))
}

func TestRankCandidates_PremiumSetFilters(t *testing.T) {
	viewer := testViewer()
	viewer.IsPremium = true

	weekly := testCandidate("weekly")
	weekly.ChurchFrequency = models.FrequencySemanal
	weekly.RelationshipGoal = models.GoalCasamento
	weekly.Denomination = "Batista"

	monthly := testCandidate("monthly")
	monthly.ChurchFrequency = models.FrequencyMensal
	monthly.RelationshipGoal = models.GoalCasamento
	monthly.Denomination = "Batista"

	filters := models.DefaultFilterState("viewer")
	filters.Denominations = []string{"Batista"}
	filters.ChurchFrequencies = []string{models.FrequencySemanal}
	filters.RelationshipGoals = []string{models.GoalCasamento}

	ranked := RankCandidates(viewer, []models.Profile{weekly, monthly}, filters, Interactions{}, testNow)
	assert.Equal(t, []string{"weekly"}, rankIDs(ranked))
}

func TestRankCandidates_BoostDominance(t *testing.T) {
	plain := testCandidate("plain")
	plain.Interests = []string{"viagem", "música"}

	boosted := testCandidate("boosted")
	boosted.BoostIsActive = true
	boosted.BoostExpiresAt = testNow.Add(30 * time.Minute).Format(time.RFC3339)

	ranked := RankCandidates(testViewer(), []models.Profile{plain, boosted},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	require.Len(t, ranked, 2)
	assert.Equal(t, "boosted", ranked[0].Profile.UserID)
	assert.Equal(t, 1000, ranked[0].Score)
	// Boost contributes no reason text.
	assert.Equal(t, "", ranked[0].Reason)
}

func TestRankCandidates_ExpiredBoostScoresNothing(t *testing.T) {
	expired := testCandidate("expired")
	expired.BoostIsActive = true
	expired.BoostExpiresAt = testNow.Add(-1 * time.Minute).Format(time.RFC3339)

	ranked := RankCandidates(testViewer(), []models.Profile{expired},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	require.Len(t, ranked, 1)
	assert.Equal(t, 0, ranked[0].Score)
}

func TestRankCandidates_LikedViewerBonusAndReason(t *testing.T) {
	admirer := testCandidate("admirer")
	admirer.Name = "Clara"
	stranger := testCandidate("stranger")

	ranked := RankCandidates(testViewer(), []models.Profile{stranger, admirer},
		models.DefaultFilterState("viewer"), Interactions{LikedViewer: idSet("admirer")}, testNow)

	require.Len(t, ranked, 2)
	assert.Equal(t, "admirer", ranked[0].Profile.UserID)
	assert.Equal(t, 500, ranked[0].Score)
	assert.Equal(t, "Clara curtiu você!", ranked[0].Reason)
}

func TestRankCandidates_SharedGoalReason(t *testing.T) {
	viewer := testViewer()
	viewer.RelationshipGoal = models.GoalCasamento

	candidate := testCandidate("goal")
	candidate.RelationshipGoal = models.GoalCasamento

	ranked := RankCandidates(viewer, []models.Profile{candidate},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	require.Len(t, ranked, 1)
	assert.Equal(t, 100, ranked[0].Score)
	assert.Equal(t, "Ambos buscam CASAMENTO", ranked[0].Reason)
}

func TestRankCandidates_ValuesReasonOutranksEqualInterests(t *testing.T) {
	// One shared value (weight 20, reason priority 21) vs two shared
	// interests (weight 20, reason priority 20). Same score, but the values
	// reason must win its candidate's display slot.
	viewer := testViewer()
	viewer.KeyValues = []string{"fé"}
	viewer.Interests = []string{"viagem", "música"}

	oneValue := testCandidate("one-value")
	oneValue.KeyValues = []string{"fé"}

	twoInterests := testCandidate("two-interests")
	twoInterests.Interests = []string{"viagem", "música"}

	ranked := RankCandidates(viewer, []models.Profile{oneValue, twoInterests},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	require.Len(t, ranked, 2)
	// Equal scores keep pool order.
	assert.Equal(t, []string{"one-value", "two-interests"}, rankIDs(ranked))
	assert.Equal(t, 20, ranked[0].Score)
	assert.Equal(t, 20, ranked[1].Score)
	assert.Equal(t, "Vocês dois valorizam fé", ranked[0].Reason)
	assert.Equal(t, "Interesse em comum: viagem", ranked[1].Reason)
}

func TestRankCandidates_ValuesNudgeWithinOneCandidate(t *testing.T) {
	viewer := testViewer()
	viewer.KeyValues = []string{"família"}
	viewer.Interests = []string{"viagem", "música"}

	candidate := testCandidate("both")
	candidate.KeyValues = []string{"família"}
	candidate.Interests = []string{"viagem", "música"}

	ranked := RankCandidates(viewer, []models.Profile{candidate},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	require.Len(t, ranked, 1)
	// 1 value + 2 interests: 20 + 20 = 40, and the values reason (priority
	// 21) beats the interests reason (priority 20).
	assert.Equal(t, 40, ranked[0].Score)
	assert.Equal(t, "Vocês dois valorizam família", ranked[0].Reason)
}

func TestRankCandidates_SilentBonuses(t *testing.T) {
	viewer := testViewer()
	viewer.Denomination = "Batista"
	viewer.ChurchFrequency = models.FrequencySemanal

	candidate := testCandidate("silent")
	candidate.Denomination = "Batista"
	candidate.ChurchFrequency = models.FrequencySemanal
	candidate.Longitude = coord(0.063) // ~7 km, inside the proximity radius

	ranked := RankCandidates(viewer, []models.Profile{candidate},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	require.Len(t, ranked, 1)
	// +5 denomination, +5 frequency, +5 proximity; none of them display.
	assert.Equal(t, 15, ranked[0].Score)
	assert.Equal(t, "", ranked[0].Reason)
}

func TestRankCandidates_StableOrderOnTies(t *testing.T) {
	first := testCandidate("first")
	second := testCandidate("second")
	third := testCandidate("third")

	ranked := RankCandidates(testViewer(), []models.Profile{first, second, third},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	assert.Equal(t, []string{"first", "second", "third"}, rankIDs(ranked))
}

func TestRankCandidates_EmptyPool(t *testing.T) {
	ranked := RankCandidates(testViewer(), nil, models.DefaultFilterState("viewer"), Interactions{}, testNow)
	assert.Empty(t, ranked)
}

func TestRankCandidates_EndToEnd(t *testing.T) {
	// Viewer at the origin seeking women, 100 km radius, no premium.
	viewer := testViewer()
	viewer.Interests = []string{"viagem", "música"}

	noPhoto := testCandidate("a")
	noPhoto.Longitude = coord(0.45) // ~50 km
	noPhoto.Photos = nil

	match := testCandidate("b")
	match.Longitude = coord(0.45)
	match.Interests = []string{"viagem", "música"}

	wrongGender := testCandidate("c")
	wrongGender.Gender = models.GenderHomem
	wrongGender.Longitude = coord(0.09) // ~10 km

	ranked := RankCandidates(viewer, []models.Profile{noPhoto, match, wrongGender},
		models.DefaultFilterState("viewer"), Interactions{}, testNow)

	require.Len(t, ranked, 1)
	assert.Equal(t, "b", ranked[0].Profile.UserID)
	assert.Equal(t, 20, ranked[0].Score)
	assert.Equal(t, "Interesse em comum: viagem", ranked[0].Reason)
}
