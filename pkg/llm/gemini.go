package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// GeminiConfig defines Gemini client settings
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Gemini implements Completer on top of the Gemini API
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini instantiates a Gemini completion client
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Gemini{client: client, model: model}, nil
}

// Complete sends one prompt and returns the text of the first candidate
func (g *Gemini) Complete(ctx context.Context, req Request) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrNotConfigured
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		genCfg.MaxOutputTokens = req.MaxTokens
	}
	if req.SystemPrompt != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.UserPrompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("llm: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("llm: empty completion")
	}
	return text, nil
}

var _ Completer = (*Gemini)(nil)
