package models

// RankedCandidate is a provider that survived filtering, with its match
// score and dense 1-based rank.
type RankedCandidate struct {
	Provider Provider `json:"provider"`
	Score    float64  `json:"score"`
	Rank     int      `json:"rank"`
}

// DispatchOutcome is the result of one attempted outbound call. Exactly one
// of (ConversationID, CallSID) or Error is populated.
type DispatchOutcome struct {
	ProviderID     string `json:"provider_id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Succeeded      bool   `json:"success"`
	ConversationID string `json:"conversation_id,omitempty"`
	CallSID        string `json:"call_sid,omitempty"`
	Error          string `json:"error,omitempty"`
}

// StartCallRequest triggers a single refine-and-dispatch call.
type StartCallRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Task        string `json:"task" binding:"required"`
}

// StartCallResponse mirrors the upstream call identifiers on success.
type StartCallResponse struct {
	Success        bool   `json:"success"`
	ConversationID string `json:"conversation_id,omitempty"`
	CallSID        string `json:"callSid,omitempty"`
}

// StartSwarmRequest ranks the catalog and dispatches concurrent calls to the
// top matches.
type StartSwarmRequest struct {
	UserPhone   string           `json:"user_phone" binding:"required"`
	Objective   string           `json:"objective" binding:"required"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}

// SwarmResult is the aggregated response for one swarm request. Outcomes are
// in ranking order, one per swarmed provider.
type SwarmResult struct {
	SwarmID          string            `json:"swarm_id"`
	DeployedAgents   int               `json:"deployed_agents"`
	SwarmedProviders []RankedCandidate `json:"swarmed_providers"`
	Outcomes         []DispatchOutcome `json:"outcomes"`
}
