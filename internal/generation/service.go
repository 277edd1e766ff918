package generation

import (
	"context"
	"strings"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/telemetry"
)

// Service proxies content-generation prompts to an injected LLM client.
// It never fails: any provider error downgrades to deterministic mock
// content, so callers always receive usable text.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service. A nil client behaves like an
// unconfigured provider.
func NewService(client llm.Client) *Service {
	if client == nil {
		client = llm.PlaceholderClient{}
	}
	return &Service{LLM: client}
}

// Generate produces content for the given prompt and field type. Exactly one
// external call is attempted; on any error or empty response the fallback
// template is returned.
func (s *Service) Generate(ctx context.Context, prompt, fieldType string) string {
	text, err := s.LLM.Complete(ctx, BuildPrompt(prompt, fieldType))
	if err != nil {
		telemetry.Error("generation.provider_failed", map[string]any{
			"field_type": fieldType,
			"error":      err.Error(),
		})
		return MockContent(prompt, fieldType)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		telemetry.Error("generation.provider_empty", map[string]any{
			"field_type": fieldType,
		})
		return MockContent(prompt, fieldType)
	}
	return text
}
