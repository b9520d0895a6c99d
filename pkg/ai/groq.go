package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/config"
)

// Completion parameters are pinned: summaries should be deterministic enough
// to edit and share, and capped well below the model context.
const (
	temperature = 0.3
	maxTokens   = 2048
)

const systemPrompt = `You are an expert meeting summarizer. Generate a structured summary based on the user's instructions.
Always maintain professionalism and clarity. Format your response appropriately based on the user's request.`

// FallbackSummary is returned when the provider responds without a usable choice.
const FallbackSummary = "No summary generated"

// GroqClient is a minimal client for Groq chat completion calls
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGroqClient creates a Groq client from the provided config. A client
// built from an empty API key reports Configured() == false and must not be
// used for completion calls.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.groq.com"
	}

	return &GroqClient{
		apiKey:  cfg.APIKey,
		baseURL: base,
		model:   cfg.Model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether a credential was supplied at startup.
func (g *GroqClient) Configured() bool {
	return g != nil && g.apiKey != ""
}

// ChatMessage is a single role/content message in a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateSummary sends the transcript and the user's instructions to Groq
// and returns the first choice's content, or FallbackSummary when the
// provider returns no usable choice.
func (g *GroqClient) GenerateSummary(ctx context.Context, transcript, instructions string) (string, error) {
	userPrompt := fmt.Sprintf("Transcript: %s\n\nInstructions: %s\n\nPlease provide a structured summary based on these instructions.", transcript, instructions)

	reqBody := ChatRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return FallbackSummary, nil
	}
	return cr.Choices[0].Message.Content, nil
}
