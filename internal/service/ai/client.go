package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/tuhina-chat/backend/internal/config"
	logx "github.com/tuhina-chat/backend/pkg/logger"
)

// Generator produces a completion for a fully rendered prompt.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client adapts the configured Gemini chat model to the Generator contract.
// A single attempt per call; retry policy belongs to callers.
type Client struct {
	chatModel model.ChatModel
	timeout   time.Duration
}

// NewClient builds the Gemini chat model from configuration.
func NewClient(ctx context.Context, cfg config.AIConfig) (*Client, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return &Client{chatModel: chatModel, timeout: cfg.Timeout}, nil
}

// Complete executes one generation call bounded by the configured timeout.
// Every failure mode, including an empty completion, is a *ProviderError.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", &ProviderError{Err: err}
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "", &ProviderError{Err: errors.New("empty completion")}
	}

	logx.Debug().
		Int("promptLen", len(prompt)).
		Int("replyLen", len(msg.Content)).
		Msg("generation completed")
	return msg.Content, nil
}
