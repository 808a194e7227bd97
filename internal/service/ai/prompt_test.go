package ai_test

import (
	"context"
	"strings"
	"testing"

	"github.com/tuhina-chat/backend/internal/model/chat"
	"github.com/tuhina-chat/backend/internal/model/persona"
	"github.com/tuhina-chat/backend/internal/service/ai"
)

const testTemplate = `You are a test persona.

Current conversation:
{history}
Human: {input}
Agent:`

func TestNewPersonaPromptMissingSlot(t *testing.T) {
	if _, err := ai.NewPersonaPrompt("no slots at all"); err == nil {
		t.Fatal("expected error for template without slots")
	}
	if _, err := ai.NewPersonaPrompt("only {history} here"); err == nil {
		t.Fatal("expected error for template without {input}")
	}
	if _, err := ai.NewPersonaPrompt("only {input} here"); err == nil {
		t.Fatal("expected error for template without {history}")
	}
}

func TestRenderContainsInput(t *testing.T) {
	p, err := ai.NewPersonaPrompt(testTemplate)
	if err != nil {
		t.Fatalf("NewPersonaPrompt err: %v", err)
	}

	out, err := p.Render(context.Background(), nil, "what's the weather like?")
	if err != nil {
		t.Fatalf("Render err: %v", err)
	}
	if !strings.Contains(out, "what's the weather like?") {
		t.Fatalf("rendered prompt missing input: %q", out)
	}
}

func TestRenderPreservesHistoryOrder(t *testing.T) {
	p, err := ai.NewPersonaPrompt(testTemplate)
	if err != nil {
		t.Fatalf("NewPersonaPrompt err: %v", err)
	}

	history := []chat.Turn{
		{Speaker: chat.SpeakerUser, Text: "first question"},
		{Speaker: chat.SpeakerAgent, Text: "first answer"},
		{Speaker: chat.SpeakerUser, Text: "second question"},
	}

	out, err := p.Render(context.Background(), history, "third question")
	if err != nil {
		t.Fatalf("Render err: %v", err)
	}

	last := -1
	for _, text := range []string{"first question", "first answer", "second question", "third question"} {
		idx := strings.Index(out, text)
		if idx < 0 {
			t.Fatalf("rendered prompt missing %q: %q", text, out)
		}
		if idx <= last {
			t.Fatalf("turn %q out of order in rendered prompt: %q", text, out)
		}
		last = idx
	}

	if !strings.Contains(out, "Human: first question") {
		t.Fatalf("user turn missing Human prefix: %q", out)
	}
	if !strings.Contains(out, "Agent: first answer") {
		t.Fatalf("agent turn missing Agent prefix: %q", out)
	}
}

func TestSeedPersonaTemplatesValid(t *testing.T) {
	for _, p := range persona.Seed() {
		if _, err := ai.NewPersonaPrompt(p.Template); err != nil {
			t.Fatalf("persona %s has invalid template: %v", p.ID, err)
		}
	}
}
