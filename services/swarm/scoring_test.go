package swarm

import (
	"testing"

	"callpilot/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreLinearFormula(t *testing.T) {
	prefs := models.PreferenceSet{PreferredTime: "morning"}

	// 4.8*20 - 2*5 + 15 (elite) = 101, clamped to 100.
	p := models.Provider{Rating: 4.8, Distance: 2}
	assert.Equal(t, 100.0, Score(p, prefs, ProfileLinear))

	// 4.0*20 - 1*5 = 75, no elite bonus.
	p = models.Provider{Rating: 4.0, Distance: 1}
	assert.Equal(t, 75.0, Score(p, prefs, ProfileLinear))

	// Rating exactly 4.7 gets no elite bonus.
	p = models.Provider{Rating: 4.7, Distance: 0}
	assert.Equal(t, 94.0, Score(p, prefs, ProfileLinear))
}

func TestScoreLinearEmphasisBonuses(t *testing.T) {
	p := models.Provider{Rating: 4.5, Distance: 2.5}
	base := Score(p, models.PreferenceSet{}, ProfileLinear)

	withRating := Score(p, models.PreferenceSet{PrioritizeRating: true}, ProfileLinear)
	assert.Equal(t, base+10, withRating)

	withDistance := Score(p, models.PreferenceSet{PrioritizeDistance: true}, ProfileLinear)
	assert.Equal(t, base+10, withDistance)

	both := Score(p, models.PreferenceSet{PrioritizeRating: true, PrioritizeDistance: true}, ProfileLinear)
	assert.Equal(t, base+20, both)

	// Emphasis thresholds: rating below 4.5 or distance at/above 3.0 earn nothing.
	far := models.Provider{Rating: 4.4, Distance: 3.0}
	assert.Equal(t,
		Score(far, models.PreferenceSet{}, ProfileLinear),
		Score(far, models.PreferenceSet{PrioritizeRating: true, PrioritizeDistance: true}, ProfileLinear))
}

func TestScoreWeightedFormula(t *testing.T) {
	// 0.4*(4.5/5*100) + 0.3*(100-2*10) + 0.3*80 = 36 + 24 + 24 = 84.
	p := models.Provider{Rating: 4.5, Distance: 2, AvailabilityScore: 80}
	assert.Equal(t, 84.0, Score(p, models.PreferenceSet{}, ProfileWeighted))

	// Missing availability reads as 0.
	p = models.Provider{Rating: 5, Distance: 0}
	assert.Equal(t, 70.0, Score(p, models.PreferenceSet{}, ProfileWeighted))

	// Distance beyond 10 miles zeroes the closeness component, not below.
	p = models.Provider{Rating: 0, Distance: 50, AvailabilityScore: 0}
	assert.Equal(t, 0.0, Score(p, models.PreferenceSet{}, ProfileWeighted))
}

func TestScoreBoundsAndDeterminism(t *testing.T) {
	providers := []models.Provider{
		{Rating: 0, Distance: 0},
		{Rating: 5, Distance: 0, AvailabilityScore: 100},
		{Rating: 5, Distance: 1000},
		{Rating: 2.3, Distance: 7.7, AvailabilityScore: 55},
		{Rating: -1, Distance: -1},
	}
	prefSets := []models.PreferenceSet{
		{},
		{PrioritizeRating: true},
		{PrioritizeDistance: true},
		{PrioritizeRating: true, PrioritizeDistance: true},
	}
	for _, profile := range []ScoringProfile{ProfileLinear, ProfileWeighted} {
		for _, p := range providers {
			for _, prefs := range prefSets {
				got := Score(p, prefs, profile)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 100.0)
				assert.Equal(t, got, Score(p, prefs, profile), "score must be deterministic")
			}
		}
	}
}

func TestScoreUnknownProfileFallsBackToLinear(t *testing.T) {
	p := models.Provider{Rating: 4.0, Distance: 1}
	assert.Equal(t, Score(p, models.PreferenceSet{}, ProfileLinear), Score(p, models.PreferenceSet{}, "mystery"))
}
