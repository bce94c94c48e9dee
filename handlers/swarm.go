package handlers

import (
	"errors"
	"net/http"

	"callpilot/config"
	"callpilot/models"
	"callpilot/services/swarm"
	"callpilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SwarmHandler exposes the call and swarm dispatch endpoints.
type SwarmHandler struct {
	Service  swarm.Service
	Matching swarm.MatchingService
	Resolver swarm.PreferenceResolver
	Logger   *zap.Logger
}

func NewSwarmHandler(svc swarm.Service, matching swarm.MatchingService, resolver swarm.PreferenceResolver, logger *zap.Logger) *SwarmHandler {
	return &SwarmHandler{Service: svc, Matching: matching, Resolver: resolver, Logger: logger}
}

// StartCall triggers a single refine-and-dispatch call.
func (h *SwarmHandler) StartCall(c *gin.Context) {
	var req models.StartCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if config.AppConfig.AgentPhoneNumberID == "" {
		utils.JSONError(c, http.StatusInternalServerError, "AGENT_PHONE_NUMBER_ID not set",
			"Add your ElevenLabs phone number ID to the environment.")
		return
	}

	resp, err := h.Service.StartCall(c.Request.Context(), req)
	if err != nil {
		h.respondSwarmError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StartSwarm ranks the catalog and dispatches concurrent calls to the top
// candidates.
func (h *SwarmHandler) StartSwarm(c *gin.Context) {
	var req models.StartSwarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if config.AppConfig.AgentPhoneNumberID == "" {
		utils.JSONError(c, http.StatusInternalServerError, "AGENT_PHONE_NUMBER_ID not set",
			"Add your ElevenLabs phone number ID to the environment.")
		return
	}

	result, err := h.Service.StartSwarm(c.Request.Context(), req)
	if err != nil {
		h.respondSwarmError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProviders returns the filtered, scored and ranked catalog view under
// the default preferences. Read-only diagnostic.
func (h *SwarmHandler) GetProviders(c *gin.Context) {
	logger := getLogger(c)
	prefs := h.Resolver.Resolve(nil)

	ranked, err := h.Matching.Rank(prefs, 0)
	if err != nil {
		logger.Error("Failed to rank providers", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load providers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"preferences": prefs,
		"providers":   ranked,
	})
}

// respondSwarmError maps orchestrator errors onto HTTP statuses: briefing
// failures are upstream errors, single-dispatch failures are request
// failures, everything else is internal.
func (h *SwarmHandler) respondSwarmError(c *gin.Context, err error) {
	var briefingErr *swarm.BriefingError
	if errors.As(err, &briefingErr) {
		utils.JSONError(c, http.StatusBadGateway, "objective refinement failed", briefingErr.Message)
		return
	}
	var dispatchErr *swarm.DispatchError
	if errors.As(err, &dispatchErr) {
		utils.JSONError(c, http.StatusBadRequest, "call dispatch failed", dispatchErr.Message)
		return
	}
	h.Logger.Error("Swarm request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "swarm request failed", err.Error())
}
