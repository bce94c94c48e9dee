package swarm

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"callpilot/catalog"
	"callpilot/models"

	"github.com/go-redis/redis/v8"
)

// TopN is the number of candidates a swarm dispatches to, fixed by policy.
const TopN = 3

// matchCacheTTL bounds how long a ranked result may be served from cache.
const matchCacheTTL = 5 * time.Minute

// MatchingService filters, scores and ranks the provider catalog.
type MatchingService interface {
	Rank(prefs models.PreferenceSet, topN int) ([]models.RankedCandidate, error)
}

// DefaultMatchingService is the file-catalog implementation. CacheClient is
// optional: when set, ranked results are cached per preference set so repeat
// swarms with identical preferences skip the scoring pass.
type DefaultMatchingService struct {
	ProviderRepo catalog.ProviderRepository
	CacheClient  *redis.Client
	Profile      ScoringProfile
}

// Rank returns at most topN candidates ordered by descending score, with
// dense 1-based ranks. Ties keep catalog order. An empty surviving set is a
// valid result, not an error.
func (s *DefaultMatchingService) Rank(prefs models.PreferenceSet, topN int) ([]models.RankedCandidate, error) {
	ctx := context.Background()

	cacheKey := s.cacheKey(prefs, topN)
	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var ranked []models.RankedCandidate
			if err := json.Unmarshal([]byte(cached), &ranked); err == nil {
				return ranked, nil
			}
			// If unmarshal fails, we fall through to re-computation.
		}
	}

	providers, err := s.ProviderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load provider catalog: %w", err)
	}

	ranked := rankProviders(providers, prefs, topN, s.Profile)

	if s.CacheClient != nil {
		if data, err := json.Marshal(ranked); err == nil {
			s.CacheClient.Set(ctx, cacheKey, data, matchCacheTTL)
		}
	}
	return ranked, nil
}

func (s *DefaultMatchingService) cacheKey(prefs models.PreferenceSet, topN int) string {
	prefBytes, _ := json.Marshal(prefs)
	return fmt.Sprintf("match:%s:%d:%x", s.Profile, topN, prefBytes)
}

// rankProviders is the pure filter-score-sort-truncate pass.
func rankProviders(providers []models.Provider, prefs models.PreferenceSet, topN int, profile ScoringProfile) []models.RankedCandidate {
	ranked := make([]models.RankedCandidate, 0, len(providers))
	for _, p := range providers {
		if p.Rating < prefs.MinRating || p.Distance > prefs.MaxDistance {
			continue
		}
		ranked = append(ranked, models.RankedCandidate{
			Provider: p,
			Score:    Score(p, prefs, profile),
		})
	}

	// Stable sort preserves catalog order between equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
