package llm

//go:generate mockgen -destination=../../internal/mocks/mock_completer.go -package=mocks . Completer

import (
	"context"
	"errors"
	"strings"
)

// ErrNotConfigured is returned by Unavailable for every call
var ErrNotConfigured = errors.New("llm: completion client not configured")

// Request is a single system+user prompt completion
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int32
}

// Completer turns a prompt into text
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Unavailable is a Completer used when no API key is configured
type Unavailable struct{}

func (Unavailable) Complete(context.Context, Request) (string, error) {
	return "", ErrNotConfigured
}

// StripCodeFence removes a surrounding markdown code fence (``` or ```json)
func StripCodeFence(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
		clean = strings.TrimPrefix(clean, "json")
		clean = strings.TrimLeft(clean, "\r\n")
		clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	}
	return strings.TrimSpace(clean)
}

// Excerpt bounds text to at most n runes
func Excerpt(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
