package briefing

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// refinementInstruction steers the model to emit a ready-to-use voice-agent
// system prompt, nothing else.
const refinementInstruction = `You write system prompts for an AI voice agent that makes outbound calls (e.g., to receptionists).

Rules:
1. Transform the user's short input into a clear, detailed instruction the voice agent will follow.
2. The resulting instructions MUST tell the voice agent to be extremely concise and avoid long introductions. Receptionists are busy; the agent should state the purpose of the call in the first 10 seconds.
3. The agent has scheduling tools available: check_availability and confirm_booking. When booking appointments or checking schedules, instruct the agent to use check_availability to find open slots and confirm_booking to finalize the appointment.
4. Output only the refined instruction text, no meta-commentary or markdown.`

// GeminiService refines objectives through the Gemini API.
type GeminiService struct {
	model *genai.GenerativeModel
}

func NewGeminiService(apiKey string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SetTemperature(0.7)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(refinementInstruction)},
	}
	return &GeminiService{model: model}, nil
}

func (g *GeminiService) Refine(ctx context.Context, objective string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(objective))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	refined := strings.TrimSpace(sb.String())
	if refined == "" {
		return "", fmt.Errorf("gemini returned empty refinement")
	}
	return refined, nil
}
