package swarm

import (
	"fmt"
	"strconv"
	"strings"

	"callpilot/models"
)

// buildAgentPrompt constructs the per-candidate briefing a voice agent is
// dispatched with. Each candidate gets its own text; only the refined
// objective is shared across the swarm.
func buildAgentPrompt(c models.RankedCandidate, prefs models.PreferenceSet, freeSlots []string, refined string) string {
	return fmt.Sprintf(
		"You are calling %s. They have a match score of %s and are %s miles away. "+
			"They are ranked #%d. Your goal is to negotiate a %s slot. "+
			"The user is free during these times: %s. "+
			"Only request slots that fall within these windows. %s",
		c.Provider.Name,
		formatNumber(c.Score),
		formatNumber(c.Provider.Distance),
		c.Rank,
		prefs.PreferredTime,
		strings.Join(freeSlots, ", "),
		refined,
	)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
