package models

// UserPreferences is the optional ranking-preference payload a caller may
// attach to a swarm request. Nil pointers mean "not supplied"; the resolver
// fills them from the persisted defaults file and then config constants.
type UserPreferences struct {
	MaxDistance        *float64 `json:"max_distance,omitempty"`
	MinRating          *float64 `json:"min_rating,omitempty"`
	PreferredTime      *string  `json:"preferred_time,omitempty"`
	PrioritizeRating   *bool    `json:"prioritize_rating,omitempty"`
	PrioritizeDistance *bool    `json:"prioritize_distance,omitempty"`
}

// PreferenceSet is a fully resolved set of ranking preferences. Every field
// is populated; resolution never fails.
type PreferenceSet struct {
	MaxDistance        float64 `json:"max_distance"`
	MinRating          float64 `json:"min_rating"`
	PreferredTime      string  `json:"preferred_time"`
	PrioritizeRating   bool    `json:"prioritize_rating"`
	PrioritizeDistance bool    `json:"prioritize_distance"`
}
