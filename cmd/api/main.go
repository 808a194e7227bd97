package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tuhina-chat/backend/internal/config"
	"github.com/tuhina-chat/backend/internal/handler"
	"github.com/tuhina-chat/backend/internal/model/persona"
	"github.com/tuhina-chat/backend/internal/service/ai"
	"github.com/tuhina-chat/backend/internal/service/chat"
	logx "github.com/tuhina-chat/backend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logx.Init()

	if err := godotenv.Load(); err != nil {
		logx.Warn().Err(err).Msg("no .env file loaded, using system environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load configuration")
	}

	personaStore := persona.NewMemoryStore(persona.Seed())
	active, ok := personaStore.FindByID(cfg.Chat.PersonaID)
	if !ok {
		logx.Fatal().Str("persona", cfg.Chat.PersonaID).Msg("unknown persona")
	}

	prompt, err := ai.NewPersonaPrompt(active.Template)
	if err != nil {
		logx.Fatal().Err(err).Str("persona", active.ID).Msg("invalid persona template")
	}

	var generator ai.Generator
	if cfg.AI.Enabled() {
		client, err := ai.NewClient(ctx, cfg.AI)
		if err != nil {
			logx.Warn().Err(err).Msg("failed to initialize generation client, replies will degrade")
		} else {
			generator = client
			logx.Info().Str("model", cfg.AI.Model).Msg("generation client ready")
		}
	} else {
		logx.Warn().Msg("GEMINI_API_KEY not set, replies will degrade")
	}

	memory := chat.NewMemory(cfg.Chat.HistoryLimit)
	agent := chat.NewAgent(prompt, generator, memory)

	router := handler.NewRouter(personaStore, agent)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logx.Info().Str("addr", serverCfg.Addr).Msg("chat relay listening")
	if err := runServer(ctx, srv); err != nil {
		logx.Fatal().Err(err).Msg("server error")
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
