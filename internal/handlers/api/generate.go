package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"keywordforge/internal/generator"
	"keywordforge/internal/middleware"
	"keywordforge/internal/models"
)

// Generator runs keyword generations.
type Generator interface {
	Generate(ctx context.Context, req generator.Request) (*generator.Result, error)
}

// GenerateHandler serves POST /api/generate.
type GenerateHandler struct {
	svc Generator
}

// NewGenerateHandler creates a generate handler.
func NewGenerateHandler(svc Generator) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

type generateRequest struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	Goal     string `json:"goal"`
	Strategy string `json:"strategy"`
}

// Generate runs one keyword generation for the caller.
func (h *GenerateHandler) Generate(c fiber.Ctx) error {
	var req generateRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := h.svc.Generate(c.Context(), generator.Request{
		Topic:    req.Topic,
		Platform: req.Platform,
		Goal:     req.Goal,
		Strategy: req.Strategy,
		User:     middleware.UserFromCtx(c),
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(models.GenerateResponse{
		Keywords:    res.Keywords,
		Grouped:     &res.Grouped,
		Count:       res.Count,
		Remaining:   res.Remaining,
		IsPro:       res.IsPro,
		UserProfile: res.Profile,
	})
}

func (h *GenerateHandler) writeError(c fiber.Ctx, err error) error {
	var quotaErr *generator.QuotaError
	switch {
	case errors.As(err, &quotaErr):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":      "You've used your free generation. Upgrade to Pro for unlimited keyword research.",
			"upgrade":    true,
			"upgradeUrl": "/pricing",
			"remaining":  quotaErr.Remaining,
		})
	case errors.Is(err, generator.ErrOnboardingIncomplete):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		// Upstream details stay in the logs.
		slog.Error("generate request failed", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to generate keywords. Please try again.")
	}
}
