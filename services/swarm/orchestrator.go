package swarm

import (
	"context"
	"fmt"
	"sync"

	"callpilot/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartCall refines the raw task into an agent briefing and triggers a
// single outbound call. A briefing failure aborts the request; a dispatch
// failure is surfaced as a structured error.
func (s *DefaultSwarmService) StartCall(ctx context.Context, req models.StartCallRequest) (*models.StartCallResponse, error) {
	s.Logger.Info("User objective received",
		zap.String("phone", req.PhoneNumber),
		zap.String("task", req.Task))

	refined, err := s.Briefing.Refine(ctx, req.Task)
	if err != nil {
		return nil, NewBriefingError(err.Error())
	}
	s.Logger.Debug("Objective refined", zap.String("prompt", refined))

	outcome := s.Dispatcher.Dispatch(ctx, req.PhoneNumber, refined)
	if !outcome.Succeeded {
		return nil, NewDispatchError(outcome.Error)
	}

	s.Logger.Info("Call dispatched", zap.String("conversationId", outcome.ConversationID))
	return &models.StartCallResponse{
		Success:        true,
		ConversationID: outcome.ConversationID,
		CallSID:        outcome.CallSID,
	}, nil
}

// StartSwarm runs the full pipeline: resolve preferences, rank the catalog,
// enrich (calendar lookup and briefing refinement, concurrently), then fan
// out up to TopN concurrent dispatches and aggregate outcomes in rank order.
func (s *DefaultSwarmService) StartSwarm(ctx context.Context, req models.StartSwarmRequest) (*models.SwarmResult, error) {
	swarmID := uuid.New().String()
	logger := s.Logger.With(zap.String("swarmId", swarmID))
	logger.Info("Swarm objective received",
		zap.String("userPhone", req.UserPhone),
		zap.String("objective", req.Objective))

	prefs := s.Resolver.Resolve(req.Preferences)

	ranked, err := s.Matching.Rank(prefs, TopN)
	if err != nil {
		return nil, fmt.Errorf("failed to rank providers: %w", err)
	}
	if len(ranked) == 0 {
		logger.Info("No providers survived filtering, swarm is empty")
		return &models.SwarmResult{
			SwarmID:          swarmID,
			SwarmedProviders: []models.RankedCandidate{},
			Outcomes:         []models.DispatchOutcome{},
		}, nil
	}

	// Calendar lookup and briefing refinement run concurrently; both must
	// complete before any prompt is constructed. The calendar side falls back
	// internally and cannot fail; the briefing side fails the whole swarm.
	var (
		freeSlots []string
		refined   string
		refineErr error
		enrichWG  sync.WaitGroup
	)
	enrichWG.Add(2)
	go func() {
		defer enrichWG.Done()
		freeSlots = s.Calendar.FreeSlots(ctx, prefs)
	}()
	go func() {
		defer enrichWG.Done()
		refined, refineErr = s.Briefing.Refine(ctx, req.Objective)
	}()
	enrichWG.Wait()
	if refineErr != nil {
		return nil, NewBriefingError(refineErr.Error())
	}

	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.Provider.Name
	}
	logger.Info("Swarm deployed", zap.Strings("providers", names))

	outcomes := make([]models.DispatchOutcome, len(ranked))
	var dispatchWG sync.WaitGroup
	for i, candidate := range ranked {
		dispatchWG.Add(1)
		go func(i int, c models.RankedCandidate) {
			defer dispatchWG.Done()
			outcomes[i] = s.dispatchOne(ctx, c, req.UserPhone, prefs, freeSlots, refined)
		}(i, candidate)
	}
	dispatchWG.Wait()

	logger.Info("Swarm dispatch complete", zap.Int("calls", len(outcomes)))
	return &models.SwarmResult{
		SwarmID:          swarmID,
		DeployedAgents:   len(outcomes),
		SwarmedProviders: ranked,
		Outcomes:         outcomes,
	}, nil
}

// dispatchOne places the call for a single candidate. Any fault escaping the
// dispatcher, panics included, is converted into a failed outcome for this
// candidate so sibling dispatches are never disturbed.
func (s *DefaultSwarmService) dispatchOne(ctx context.Context, c models.RankedCandidate, userPhone string, prefs models.PreferenceSet, freeSlots []string, refined string) (outcome models.DispatchOutcome) {
	dialTarget := c.Provider.DialTarget(userPhone)

	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("Dispatch panicked",
				zap.String("providerId", c.Provider.ID),
				zap.Any("panic", r))
			outcome = models.DispatchOutcome{
				ProviderID: c.Provider.ID,
				Name:       c.Provider.Name,
				Phone:      dialTarget,
				Error:      fmt.Sprintf("dispatch panic: %v", r),
			}
		}
	}()

	prompt := buildAgentPrompt(c, prefs, freeSlots, refined)
	outcome = s.Dispatcher.Dispatch(ctx, dialTarget, prompt)
	outcome.ProviderID = c.Provider.ID
	outcome.Name = c.Provider.Name
	return outcome
}
