// Package catalog provides the read-only file-backed stores the orchestrator
// ranks against: the provider catalog and the persisted preference defaults.
package catalog

import "callpilot/models"

// ProviderRepository defines access to the provider catalog.
type ProviderRepository interface {
	GetAll() ([]models.Provider, error)
}

// PreferenceRepository defines access to the persisted preference defaults.
// Loading is total: a missing or malformed source yields an empty partial set.
type PreferenceRepository interface {
	GetDefaults() models.UserPreferences
}
