package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/tuhina-chat/backend/internal/model/chat"
)

const (
	slotHistory = "history"
	slotInput   = "input"
)

// PersonaPrompt renders a persona template over the conversation history and
// the incoming message. Rendering is pure: no provider call, no state.
type PersonaPrompt struct {
	template prompt.ChatTemplate
}

// NewPersonaPrompt validates the template and prepares it for rendering.
// A template missing the {history} or {input} slot is a startup error.
func NewPersonaPrompt(tmpl string) (*PersonaPrompt, error) {
	for _, slot := range []string{slotHistory, slotInput} {
		if !strings.Contains(tmpl, "{"+slot+"}") {
			return nil, fmt.Errorf("persona template missing required {%s} slot", slot)
		}
	}

	return &PersonaPrompt{
		template: prompt.FromMessages(schema.FString, schema.UserMessage(tmpl)),
	}, nil
}

// Render fills the template slots and returns the full prompt text. History
// is serialized as alternating "Human:" / "Agent:" lines in append order.
func (p *PersonaPrompt) Render(ctx context.Context, history []chat.Turn, input string) (string, error) {
	msgs, err := p.template.Format(ctx, map[string]any{
		slotHistory: renderHistory(history),
		slotInput:   input,
	})
	if err != nil {
		return "", fmt.Errorf("persona prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("persona prompt render: empty result")
	}
	return msgs[0].Content, nil
}

func renderHistory(history []chat.Turn) string {
	var b strings.Builder
	for i, turn := range history {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch turn.Speaker {
		case chat.SpeakerAgent:
			b.WriteString("Agent: ")
		default:
			b.WriteString("Human: ")
		}
		b.WriteString(turn.Text)
	}
	return b.String()
}
