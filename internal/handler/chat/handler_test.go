package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tuhina-chat/backend/internal/service/ai"
	chatservice "github.com/tuhina-chat/backend/internal/service/chat"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func setupRouter(t *testing.T, gen ai.Generator) (*chi.Mux, *chatservice.Memory) {
	t.Helper()
	prompt, err := ai.NewPersonaPrompt("{history}|{input}")
	if err != nil {
		t.Fatalf("NewPersonaPrompt err: %v", err)
	}
	memory := chatservice.NewMemory(0)
	handler := New(chatservice.NewAgent(prompt, gen, memory))

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, memory
}

func postChat(t *testing.T, r http.Handler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestChatSuccess(t *testing.T) {
	r, memory := setupRouter(t, generatorFunc(func(context.Context, string) (string, error) {
		return "hey! how's it going? 😊", nil
	}))

	payload, _ := json.Marshal(map[string]string{"message": "hello"})
	resp := postChat(t, r, payload)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["reply"] != "hey! how's it going? 😊" {
		t.Fatalf("unexpected reply: %q", body["reply"])
	}
	if memory.Len() != 2 {
		t.Fatalf("expected 2 turns after exchange, got %d", memory.Len())
	}
}

func TestChatEmptyMessageVariants(t *testing.T) {
	r, memory := setupRouter(t, generatorFunc(func(context.Context, string) (string, error) {
		return "should never be called", nil
	}))

	for _, message := range []string{"", " ", "\t\n"} {
		payload, _ := json.Marshal(map[string]string{"message": message})
		resp := postChat(t, r, payload)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("message %q: expected 400, got %d", message, resp.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("message %q: invalid response body: %v", message, err)
		}
		if body["error"] != "empty message" {
			t.Fatalf("message %q: unexpected error body: %q", message, body["error"])
		}
		if memory.Len() != 0 {
			t.Fatalf("message %q: memory mutated by rejected input", message)
		}
	}
}

func TestChatProviderFailureStillOK(t *testing.T) {
	r, memory := setupRouter(t, generatorFunc(func(context.Context, string) (string, error) {
		return "", &ai.ProviderError{Err: errors.New("quota exceeded")}
	}))

	payload, _ := json.Marshal(map[string]string{"message": "hello"})
	resp := postChat(t, r, payload)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on provider failure, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["reply"] == "" {
		t.Fatal("expected non-empty degraded reply")
	}
	if memory.Len() != 0 {
		t.Fatalf("memory mutated by failed exchange: %d turns", memory.Len())
	}
}

func TestChatInvalidBody(t *testing.T) {
	r, _ := setupRouter(t, generatorFunc(func(context.Context, string) (string, error) {
		return "unused", nil
	}))

	resp := postChat(t, r, []byte("{not json"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
