package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tuhina-chat/backend/internal/handler/chat"
	"github.com/tuhina-chat/backend/internal/handler/persona"
	middlewarePkg "github.com/tuhina-chat/backend/internal/middleware"
	personaModel "github.com/tuhina-chat/backend/internal/model/persona"
	chatService "github.com/tuhina-chat/backend/internal/service/chat"
	"github.com/tuhina-chat/backend/web"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(personas personaModel.Store, agent *chatService.Agent) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)
	r.Use(middlewarePkg.NoCache)

	chatHandler := chat.New(agent)
	personaHandler := persona.New(personas)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		personaHandler.RegisterRoutes(api)
	})

	// Landing page and its assets.
	r.Handle("/*", web.Handler())

	return r
}
