package telephony

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"callpilot/models"

	"go.uber.org/zap"
)

const (
	defaultBaseURL   = "https://api.elevenlabs.io"
	outboundCallPath = "/v1/convai/twilio/outbound-call"
	dispatchTimeout  = 60 * time.Second
)

// ElevenLabsDispatcher triggers outbound calls via the ElevenLabs convai
// Twilio integration.
type ElevenLabsDispatcher struct {
	APIKey             string
	AgentID            string
	AgentPhoneNumberID string
	BaseURL            string
	Client             *http.Client
	Logger             *zap.Logger
}

type outboundCallPayload struct {
	AgentID            string                 `json:"agent_id"`
	AgentPhoneNumberID string                 `json:"agent_phone_number_id"`
	ToNumber           string                 `json:"to_number"`
	InitiationData     map[string]interface{} `json:"conversation_initiation_client_data"`
}

type outboundCallResponse struct {
	ConversationID string `json:"conversation_id"`
	CallSID        string `json:"callSid"`
}

type outboundCallError struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

func (d *ElevenLabsDispatcher) Dispatch(ctx context.Context, phone, prompt string) models.DispatchOutcome {
	outcome := models.DispatchOutcome{Phone: phone}

	payload := outboundCallPayload{
		AgentID:            d.AgentID,
		AgentPhoneNumberID: d.AgentPhoneNumberID,
		ToNumber:           phone,
		InitiationData: map[string]interface{}{
			"conversation_config_override": map[string]interface{}{
				"agent": map[string]interface{}{
					"prompt": map[string]string{"prompt": prompt},
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		outcome.Error = fmt.Sprintf("failed to encode call payload: %v", err)
		return outcome
	}

	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL()+outboundCallPath, bytes.NewReader(body))
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	req.Header.Set("xi-api-key", d.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		d.Logger.Warn("Outbound call request failed", zap.String("phone", phone), zap.Error(err))
		outcome.Error = err.Error()
		return outcome
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome.Error = fmt.Sprintf("failed to read call response: %v", err)
		return outcome
	}

	if resp.StatusCode >= 400 {
		outcome.Error = extractErrorDetail(raw, resp.Status)
		d.Logger.Warn("Outbound call rejected",
			zap.String("phone", phone),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", outcome.Error))
		return outcome
	}

	var parsed outboundCallResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		outcome.Error = fmt.Sprintf("malformed call response: %v", err)
		return outcome
	}

	outcome.Succeeded = true
	outcome.ConversationID = parsed.ConversationID
	outcome.CallSID = parsed.CallSID
	return outcome
}

func (d *ElevenLabsDispatcher) baseURL() string {
	if d.BaseURL != "" {
		return d.BaseURL
	}
	return defaultBaseURL
}

// extractErrorDetail pulls the most specific message out of an error body:
// the "detail" field, then "message", then the raw body, then the status line.
func extractErrorDetail(raw []byte, status string) string {
	var parsed outboundCallError
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if len(parsed.Detail) > 0 {
			var detailStr string
			if err := json.Unmarshal(parsed.Detail, &detailStr); err == nil {
				return detailStr
			}
			return string(parsed.Detail)
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	if len(raw) > 0 {
		return string(raw)
	}
	return status
}
