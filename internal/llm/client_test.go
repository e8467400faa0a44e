package llm

import (
	"context"
	"errors"
	"testing"
)

func TestGenerationConfig(t *testing.T) {
	cfg := generationConfig(Request{Prompt: "x", Temperature: 0.2, JSON: true})
	if cfg.Temperature == nil || *cfg.Temperature != 0.2 {
		t.Fatalf("expected temperature 0.2, got %v", cfg.Temperature)
	}
	if cfg.TopK == nil || *cfg.TopK != 40 || cfg.TopP == nil || *cfg.TopP != 0.95 {
		t.Fatalf("unexpected sampling config %+v", cfg)
	}
	if cfg.MaxOutputTokens != 1024 {
		t.Fatalf("expected 1024 max tokens, got %d", cfg.MaxOutputTokens)
	}
	if cfg.ResponseMIMEType != "application/json" {
		t.Fatalf("expected json mime type, got %q", cfg.ResponseMIMEType)
	}

	plain := generationConfig(Request{Prompt: "x", Temperature: 0.3})
	if plain.ResponseMIMEType != "" {
		t.Fatalf("expected no mime type, got %q", plain.ResponseMIMEType)
	}
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	if _, err := NewGeminiClient(context.Background(), "  ", "", "", nil); err == nil {
		t.Fatalf("expected error for empty api key")
	}
}

func TestMockClientRecordsRequests(t *testing.T) {
	m := &MockClient{Response: "ok"}
	if _, ok := m.LastRequest(); ok {
		t.Fatalf("expected no request yet")
	}
	out, err := m.Generate(context.Background(), Request{Prompt: "hola"})
	if err != nil || out != "ok" {
		t.Fatalf("expected ok, got %q err=%v", out, err)
	}
	req, ok := m.LastRequest()
	if !ok || req.Prompt != "hola" || m.Calls() != 1 {
		t.Fatalf("unexpected recorded request %+v", req)
	}

	failing := &MockClient{Err: errors.New("boom")}
	if _, err := failing.Generate(context.Background(), Request{Prompt: "x"}); err == nil {
		t.Fatalf("expected error")
	}
}
