package generation

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/llm"
)

type fakeLLM struct {
	calls   int
	lastIn  string
	respond string
	err     error
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastIn = prompt
	return f.respond, f.err
}

func TestGenerateReturnsProviderText(t *testing.T) {
	client := &fakeLLM{respond: "  A polished summary.  "}
	svc := NewService(client)

	got := svc.Generate(context.Background(), "Senior engineer", FieldProfileSummary)
	if got != "A polished summary." {
		t.Fatalf("got %q", got)
	}
	if client.calls != 1 {
		t.Errorf("calls = %d, want exactly one", client.calls)
	}
	if client.lastIn == "Senior engineer" {
		t.Errorf("prompt sent without framing: %q", client.lastIn)
	}
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	client := &fakeLLM{err: errors.New("quota exceeded")}
	svc := NewService(client)

	got := svc.Generate(context.Background(), "Senior engineer", FieldProfileSummary)
	want := "Mock Profile Summary: Senior engineer. This is a generated summary."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if client.calls != 1 {
		t.Errorf("calls = %d, want one attempt, no retries", client.calls)
	}
}

func TestGenerateFallsBackOnEmptyResponse(t *testing.T) {
	client := &fakeLLM{respond: "   \n  "}
	svc := NewService(client)

	got := svc.Generate(context.Background(), "X", "unknown")
	if got != "Mock Content: X" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateWithNilClientServesFallback(t *testing.T) {
	svc := NewService(nil)

	got := svc.Generate(context.Background(), "Built APIs", FieldJobDescription)
	want := "Mock Job Description: Built APIs. This is a generated job description."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateWithPlaceholderClient(t *testing.T) {
	svc := NewService(llm.PlaceholderClient{})

	got := svc.Generate(context.Background(), "CLI tool", FieldProjectDescription)
	want := "Mock Project Description: CLI tool. This is a generated project description."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
