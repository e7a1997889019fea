package llm

import (
	"context"
	"errors"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}```":       `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for in, want := range cases {
		if got := StripCodeFence(in); got != want {
			t.Errorf("StripCodeFence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("héllo", 2); got != "hé" {
		t.Fatalf("Excerpt = %q", got)
	}
	if got := Excerpt("short", 10); got != "short" {
		t.Fatalf("Excerpt = %q", got)
	}
	if got := Excerpt("x", 0); got != "" {
		t.Fatalf("Excerpt = %q", got)
	}
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Complete(context.Background(), Request{UserPrompt: "hi"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNewGeminiRequiresKey(t *testing.T) {
	if _, err := NewGemini(context.Background(), GeminiConfig{}); err == nil {
		t.Fatal("expected error without api key")
	}
}
