package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v78"

	"keywordforge/internal/config"
	"keywordforge/internal/generator"
	"keywordforge/internal/identity"
	"keywordforge/internal/llm"
	"keywordforge/internal/metrics"
	"keywordforge/internal/server"
	"keywordforge/internal/usage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	ctx := context.Background()
	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		slog.Error("failed to load plans config", "error", err)
		os.Exit(1)
	}

	metrics.Init()

	if cfg.LLMAPIKey == "" {
		slog.Warn("LLM_API_KEY is not set; generation requests will fail")
	}
	if cfg.StripeSecretKey != "" {
		stripe.Key = cfg.StripeSecretKey
	}

	users := identity.NewClient(cfg.IdentityAPIURL, cfg.IdentitySecretKey, 10*time.Second)
	limiter := usage.NewLimiter(users, yamlCfg.Admins())

	client := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	genCfg := generator.DefaultConfig()
	genCfg.FreeKeywordCount = yamlCfg.FreeKeywordCount()
	genCfg.ProKeywordCount = yamlCfg.ProKeywordCount()
	svc := generator.New(client, limiter, genCfg)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, server.Deps{
		Users:     users,
		Metadata:  users,
		Generator: svc,
		Limiter:   limiter,
		Topics:    yamlCfg.Topics(),
	}); err != nil {
		slog.Error("failed to register routes", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()
	slog.Info("server started", "addr", cfg.ServerAddr, "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited")
}
