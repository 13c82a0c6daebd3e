package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"keywordforge/internal/handlers"
	"keywordforge/internal/handlers/api"
	"keywordforge/internal/middleware"
	"keywordforge/internal/usage"
)

// Deps are the wired collaborators the routes need.
type Deps struct {
	Users     middleware.UserFetcher
	Metadata  api.MetadataWriter
	Generator api.Generator
	Limiter   *usage.Limiter
	Topics    []string
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, deps Deps) error {
	authMiddleware := middleware.NewAuthMiddleware(s.Store, deps.Users)

	pageHandler := handlers.NewPageHandler(s.Cfg, deps.Topics)
	probeHandler := handlers.NewProbeHandler(s.Cfg)
	generateHandler := api.NewGenerateHandler(deps.Generator)
	usageHandler := api.NewUsageHandler(deps.Limiter)
	checkoutHandler := api.NewCheckoutHandler(s.Cfg)
	webhookHandler := api.NewWebhookHandler(s.Cfg.StripeWebhookSecret, deps.Metadata)

	// Auth routes - only registered when OIDC is configured. Without it
	// every visitor is anonymous and gets the client-side free run gate.
	if s.Cfg.OIDCIssuer != "" {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		slog.Warn("OIDC authentication is disabled. Set OIDC_ISSUER to enable sign-in.")
	}

	// Pages. Generation is open to anonymous visitors; the quota check
	// decides what they may run.
	s.App.Get("/", authMiddleware.OptionalAuth, pageHandler.Index)
	s.App.Get("/onboarding", authMiddleware.OptionalAuth, pageHandler.Onboarding)
	s.App.Get("/generate", authMiddleware.OptionalAuth, pageHandler.Generate)
	s.App.Get("/pricing", authMiddleware.OptionalAuth, pageHandler.Pricing)
	s.App.Get("/success", authMiddleware.RequireAuth, pageHandler.Success)
	s.App.Get("/login", authMiddleware.OptionalAuth, pageHandler.Login)

	// JSON API. Checkout enforces sign-in itself with a 401 instead of
	// the redirect RequireAuth would issue.
	s.App.Post("/api/generate", authMiddleware.OptionalAuth, generateHandler.Generate)
	s.App.Get("/api/usage", authMiddleware.OptionalAuth, usageHandler.Usage)
	s.App.Post("/api/checkout", authMiddleware.OptionalAuth, checkoutHandler.Checkout)
	s.App.Post("/api/webhook", webhookHandler.Webhook)

	// Operational endpoints
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
