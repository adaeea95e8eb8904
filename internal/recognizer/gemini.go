package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used for phrase recognition.
// Recognition needs no reasoning depth, so the fast tier is enough.
const DefaultModel = "gemini-2.0-flash"

const candidatePrompt = `Extract every noun phrase that could name a technology,
programming language, framework, tool, database, or cloud service from the text
below. Return a JSON array of lowercase strings, nothing else. Include both the
full phrase and its head word when they differ (e.g. "spring boot" and "boot").

Text:
%s`

// Gemini is a Recognizer backed by the Gemini API. Matching stays lexical:
// the model only proposes phrases, which the extractor still resolves
// against the taxonomy.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed recognizer.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client, model: DefaultModel}, nil
}

// Candidates asks the model for candidate phrases in text.
func (g *Gemini) Candidates(ctx context.Context, text string) ([]string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(candidatePrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate candidates: %w", err)
	}

	raw, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var candidates []string
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidate list: %w", err)
	}
	return candidates, nil
}

// Close releases resources held by the underlying client.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
