package swarm

import (
	"context"

	"callpilot/models"
	"callpilot/services/briefing"
	"callpilot/services/calendar"
	"callpilot/services/telephony"

	"go.uber.org/zap"
)

// Service is the swarm dispatch orchestrator.
type Service interface {
	// StartCall refines the task and places one outbound call.
	StartCall(ctx context.Context, req models.StartCallRequest) (*models.StartCallResponse, error)
	// StartSwarm ranks the catalog and fans out concurrent calls to the top
	// candidates, aggregating one outcome per candidate in ranking order.
	StartSwarm(ctx context.Context, req models.StartSwarmRequest) (*models.SwarmResult, error)
}

// DefaultSwarmService implements Service.
type DefaultSwarmService struct {
	Matching   MatchingService
	Resolver   PreferenceResolver
	Briefing   briefing.Service
	Calendar   calendar.Service
	Dispatcher telephony.Dispatcher
	Logger     *zap.Logger
}
