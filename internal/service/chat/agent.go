package chat

import (
	"context"
	"errors"

	"github.com/tuhina-chat/backend/internal/model/chat"
	"github.com/tuhina-chat/backend/internal/service/ai"
	logx "github.com/tuhina-chat/backend/pkg/logger"
)

// Agent composes the persona prompt, conversation memory, and generation
// client into a single Respond operation.
type Agent struct {
	prompt    *ai.PersonaPrompt
	generator ai.Generator
	memory    *Memory
}

// NewAgent wires an agent from its collaborators. generator may be nil when
// no provider credential is configured; Respond then fails with a
// *ai.ProviderError, which the relay boundary degrades into a reply.
func NewAgent(prompt *ai.PersonaPrompt, generator ai.Generator, memory *Memory) *Agent {
	return &Agent{prompt: prompt, generator: generator, memory: memory}
}

// Memory exposes the conversation memory, mainly for handlers and tests.
func (a *Agent) Memory() *Memory {
	return a.memory
}

// Respond renders the prompt over the current history, calls the provider,
// and on success commits the user/agent turn pair. Input validation is the
// relay boundary's job. On any failure memory is left untouched so a retried
// call sees consistent state: the pair is appended atomically only after a
// successful completion. The provider call runs outside the memory lock.
func (a *Agent) Respond(ctx context.Context, input string) (string, error) {
	history := a.memory.Snapshot()
	prompt, err := a.prompt.Render(ctx, history, input)
	if err != nil {
		return "", err
	}

	if a.generator == nil {
		return "", &ai.ProviderError{Err: errors.New("generation client not configured")}
	}

	reply, err := a.generator.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	a.memory.AppendExchange(
		chat.Turn{Speaker: chat.SpeakerUser, Text: input},
		chat.Turn{Speaker: chat.SpeakerAgent, Text: reply},
	)

	logx.Debug().Int("turns", a.memory.Len()).Msg("exchange committed")
	return reply, nil
}
