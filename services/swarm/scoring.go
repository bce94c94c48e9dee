package swarm

import (
	"math"

	"callpilot/models"
)

// ScoringProfile selects which match-score formula a deployment uses.
type ScoringProfile string

const (
	// ProfileLinear is the rating-minus-distance formula with flat bonuses.
	ProfileLinear ScoringProfile = "linear"
	// ProfileWeighted blends normalized rating, closeness and availability.
	ProfileWeighted ScoringProfile = "weighted"
)

// Linear-profile constants.
const (
	ratingPointsPerStar = 20.0
	distancePenaltyMile = 5.0
	eliteRatingFloor    = 4.7
	eliteBonus          = 15.0
	emphasisRatingFloor = 4.5
	emphasisDistanceCap = 3.0
	emphasisBonus       = 10.0
)

// Weighted-profile constants.
const (
	ratingWeight       = 0.4
	closenessWeight    = 0.3
	availabilityWeight = 0.3
	closenessPerMile   = 10.0
)

// Score computes the match score for one provider under the given resolved
// preferences. The result is always in [0,100], rounded to one decimal, and
// deterministic for identical inputs. Unknown profiles fall back to linear.
func Score(p models.Provider, prefs models.PreferenceSet, profile ScoringProfile) float64 {
	if profile == ProfileWeighted {
		return scoreWeighted(p)
	}
	return scoreLinear(p, prefs)
}

func scoreLinear(p models.Provider, prefs models.PreferenceSet) float64 {
	score := p.Rating*ratingPointsPerStar - p.Distance*distancePenaltyMile
	if p.Rating > eliteRatingFloor {
		score += eliteBonus
	}
	if prefs.PrioritizeRating && p.Rating >= emphasisRatingFloor {
		score += emphasisBonus
	}
	if prefs.PrioritizeDistance && p.Distance < emphasisDistanceCap {
		score += emphasisBonus
	}
	return round1(clamp(score, 0, 100))
}

func scoreWeighted(p models.Provider) float64 {
	ratingScore := clamp(p.Rating/5*100, 0, 100)
	closeness := clamp(100-p.Distance*closenessPerMile, 0, 100)
	availability := clamp(p.AvailabilityScore, 0, 100)
	total := ratingWeight*ratingScore + closenessWeight*closeness + availabilityWeight*availability
	return round1(clamp(total, 0, 100))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
