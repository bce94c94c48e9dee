package swarm

import (
	"callpilot/catalog"
	"callpilot/models"
)

// PreferenceResolver merges request-supplied preferences with persisted
// defaults into one fully populated set.
type PreferenceResolver interface {
	Resolve(req *models.UserPreferences) models.PreferenceSet
}

// DefaultPreferenceResolver resolves with precedence: explicit request fields
// over the persisted defaults file over the configured base constants.
// Resolution is total; a missing or malformed defaults source just falls
// through to the base.
type DefaultPreferenceResolver struct {
	Repo catalog.PreferenceRepository
	Base models.PreferenceSet
}

func (r *DefaultPreferenceResolver) Resolve(req *models.UserPreferences) models.PreferenceSet {
	resolved := r.Base

	persisted := r.Repo.GetDefaults()
	applyPartial(&resolved, persisted)
	if req != nil {
		applyPartial(&resolved, *req)
	}
	return resolved
}

func applyPartial(dst *models.PreferenceSet, src models.UserPreferences) {
	if src.MaxDistance != nil {
		dst.MaxDistance = *src.MaxDistance
	}
	if src.MinRating != nil {
		dst.MinRating = *src.MinRating
	}
	if src.PreferredTime != nil && *src.PreferredTime != "" {
		dst.PreferredTime = *src.PreferredTime
	}
	if src.PrioritizeRating != nil {
		dst.PrioritizeRating = *src.PrioritizeRating
	}
	if src.PrioritizeDistance != nil {
		dst.PrioritizeDistance = *src.PrioritizeDistance
	}
}
