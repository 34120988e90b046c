package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ralph-ai/backend/config"
	"ralph-ai/backend/controllers"
	"ralph-ai/backend/llm"
	"ralph-ai/backend/mailer"
	"ralph-ai/backend/middlewares"
	"ralph-ai/backend/report"
	"ralph-ai/backend/routes"
)

func main() {
	cfg := config.Load()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	ctx := context.Background()

	var completer llm.Completer
	if cfg.GeminiConfigured() {
		client, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.Error().Err(err).Msg("gemini client init failed, AI analysis disabled")
		} else {
			defer client.Close()
			completer = client
		}
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, AI analysis disabled")
	}

	store, err := report.NewStore(cfg.ReportDir, cfg.ReportTTL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("report store init failed")
	}
	go store.Janitor(ctx)

	deps := controllers.Deps{
		Cfg:     cfg,
		LLM:     completer,
		Mailer:  mailer.New(cfg, logger),
		Reports: store,
		Log:     logger,
	}

	r := gin.Default()
	r.Use(middlewares.CORS())
	routes.Register(r, deps)

	logger.Info().
		Str("port", cfg.Port).
		Bool("gemini_configured", completer != nil).
		Bool("email_configured", cfg.EmailConfigured()).
		Str("report_dir", store.Dir()).
		Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
