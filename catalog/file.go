package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"callpilot/models"
)

// FileProviderRepo loads the catalog from a flat JSON file on every call.
// The file is a read-only input, safe for unsynchronized concurrent reads.
type FileProviderRepo struct {
	Path string
}

func NewFileProviderRepo(path string) *FileProviderRepo {
	return &FileProviderRepo{Path: path}
}

// GetAll reads and parses the catalog file. Legacy entries that carry the
// self-dial phone sentinel are normalized onto the routing_mode field, and
// entries without an explicit mode default to normal routing.
func (r *FileProviderRepo) GetAll() ([]models.Provider, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("provider catalog %s not found: %w", r.Path, err)
	}
	var providers []models.Provider
	if err := json.Unmarshal(data, &providers); err != nil {
		return nil, fmt.Errorf("provider catalog %s invalid: %w", r.Path, err)
	}
	for i := range providers {
		if providers[i].Phone == models.LegacySelfPhoneSentinel {
			providers[i].Phone = ""
			providers[i].RoutingMode = models.RoutingSelf
		}
		if providers[i].RoutingMode == "" {
			providers[i].RoutingMode = models.RoutingNormal
		}
	}
	return providers, nil
}

// FilePreferenceRepo loads persisted preference defaults from a JSON file.
type FilePreferenceRepo struct {
	Path string
}

func NewFilePreferenceRepo(path string) *FilePreferenceRepo {
	return &FilePreferenceRepo{Path: path}
}

// GetDefaults returns whatever partial preference set the file holds. A
// missing or malformed file is not an error: resolution falls through to the
// configured constants.
func (r *FilePreferenceRepo) GetDefaults() models.UserPreferences {
	var prefs models.UserPreferences
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return prefs
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return models.UserPreferences{}
	}
	return prefs
}
