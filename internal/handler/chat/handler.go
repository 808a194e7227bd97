package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	chatService "github.com/tuhina-chat/backend/internal/service/chat"
	logx "github.com/tuhina-chat/backend/pkg/logger"
	"github.com/tuhina-chat/backend/pkg/utils"
)

// Handler is the relay boundary: it validates input, invokes the agent, and
// degrades every downstream failure into a conversational reply.
type Handler struct {
	agent *chatService.Agent
}

// New creates the chat handler.
func New(agent *chatService.Agent) *Handler {
	return &Handler{agent: agent}
}

// RegisterRoutes registers the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// handleChat serves POST /api/chat. An empty message is the only validation
// error; anything the agent returns, including provider failures, comes back
// as HTTP 200 with an apologetic reply so the conversation never breaks.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "empty message")
		return
	}

	reply, err := h.agent.Respond(r.Context(), message)
	if err != nil {
		logx.Error().Err(err).Msg("generation failed")
		reply = fmt.Sprintf("Sorry, an error occurred: %v", err)
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
