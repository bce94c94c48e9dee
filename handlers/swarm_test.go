package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"callpilot/config"
	"callpilot/models"
	"callpilot/services/swarm"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSwarmService struct {
	callErr  error
	swarmErr error
	result   *models.SwarmResult
}

func (s *stubSwarmService) StartCall(ctx context.Context, req models.StartCallRequest) (*models.StartCallResponse, error) {
	if s.callErr != nil {
		return nil, s.callErr
	}
	return &models.StartCallResponse{Success: true, ConversationID: "conv-1"}, nil
}

func (s *stubSwarmService) StartSwarm(ctx context.Context, req models.StartSwarmRequest) (*models.SwarmResult, error) {
	if s.swarmErr != nil {
		return nil, s.swarmErr
	}
	return s.result, nil
}

type stubMatching struct {
	ranked []models.RankedCandidate
}

func (s *stubMatching) Rank(prefs models.PreferenceSet, topN int) ([]models.RankedCandidate, error) {
	return s.ranked, nil
}

type stubResolver struct{}

func (s *stubResolver) Resolve(req *models.UserPreferences) models.PreferenceSet {
	return models.PreferenceSet{MaxDistance: 5, MinRating: 4, PreferredTime: "morning"}
}

func newSwarmRouter(t *testing.T, svc swarm.Service, matching swarm.MatchingService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.AgentPhoneNumberID = "phone-1"

	h := NewSwarmHandler(svc, matching, &stubResolver{}, zap.NewNop())
	r := gin.New()
	r.POST("/start-call", h.StartCall)
	r.POST("/start-swarm", h.StartSwarm)
	r.GET("/providers", h.GetProviders)
	return r
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestStartCallHandler(t *testing.T) {
	router := newSwarmRouter(t, &stubSwarmService{}, &stubMatching{})

	w := postJSON(router, "/start-call", `{"phone_number": "+15550100", "task": "book a cleaning"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StartCallResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "conv-1", resp.ConversationID)
}

func TestStartCallHandlerValidation(t *testing.T) {
	router := newSwarmRouter(t, &stubSwarmService{}, &stubMatching{})

	w := postJSON(router, "/start-call", `{"phone_number": "+15550100"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartCallHandlerMissingPhoneNumberID(t *testing.T) {
	router := newSwarmRouter(t, &stubSwarmService{}, &stubMatching{})
	config.AppConfig.AgentPhoneNumberID = ""
	defer func() { config.AppConfig.AgentPhoneNumberID = "phone-1" }()

	w := postJSON(router, "/start-call", `{"phone_number": "+15550100", "task": "book"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStartCallHandlerErrorMapping(t *testing.T) {
	briefingRouter := newSwarmRouter(t, &stubSwarmService{callErr: swarm.NewBriefingError("model down")}, &stubMatching{})
	w := postJSON(briefingRouter, "/start-call", `{"phone_number": "+15550100", "task": "book"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	dispatchRouter := newSwarmRouter(t, &stubSwarmService{callErr: swarm.NewDispatchError("call rejected")}, &stubMatching{})
	w = postJSON(dispatchRouter, "/start-call", `{"phone_number": "+15550100", "task": "book"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartSwarmHandler(t *testing.T) {
	result := &models.SwarmResult{
		SwarmID:        "swarm-1",
		DeployedAgents: 1,
		SwarmedProviders: []models.RankedCandidate{
			{Provider: models.Provider{ID: "1", Name: "Alpha Dental"}, Score: 100, Rank: 1},
		},
		Outcomes: []models.DispatchOutcome{
			{ProviderID: "1", Name: "Alpha Dental", Phone: "+15550101", Succeeded: true, ConversationID: "c1"},
		},
	}
	router := newSwarmRouter(t, &stubSwarmService{result: result}, &stubMatching{})

	w := postJSON(router, "/start-swarm", `{"user_phone": "+15550000", "objective": "book a cleaning"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SwarmResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "swarm-1", resp.SwarmID)
	assert.Equal(t, 1, resp.DeployedAgents)
	require.Len(t, resp.Outcomes, 1)
	assert.True(t, resp.Outcomes[0].Succeeded)
}

func TestStartSwarmHandlerValidation(t *testing.T) {
	router := newSwarmRouter(t, &stubSwarmService{}, &stubMatching{})

	w := postJSON(router, "/start-swarm", `{"objective": "book a cleaning"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProvidersHandler(t *testing.T) {
	matching := &stubMatching{ranked: []models.RankedCandidate{
		{Provider: models.Provider{ID: "1", Name: "Alpha Dental"}, Score: 92.5, Rank: 1},
		{Provider: models.Provider{ID: "2", Name: "Bravo Dental"}, Score: 75, Rank: 2},
	}}
	router := newSwarmRouter(t, &stubSwarmService{}, matching)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/providers", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Preferences models.PreferenceSet     `json:"preferences"`
		Providers   []models.RankedCandidate `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Providers, 2)
	assert.Equal(t, "morning", resp.Preferences.PreferredTime)
	assert.Equal(t, 92.5, resp.Providers[0].Score)
}
