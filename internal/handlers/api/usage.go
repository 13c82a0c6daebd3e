package api

import (
	"github.com/gofiber/fiber/v3"

	"keywordforge/internal/middleware"
	"keywordforge/internal/models"
	"keywordforge/internal/usage"
)

// UsageHandler serves GET /api/usage.
type UsageHandler struct {
	limiter *usage.Limiter
}

// NewUsageHandler creates a usage handler.
func NewUsageHandler(limiter *usage.Limiter) *UsageHandler {
	return &UsageHandler{limiter: limiter}
}

// Usage reports the caller's quota status so the client can gate the
// generate button before submitting.
func (h *UsageHandler) Usage(c fiber.Ctx) error {
	status := h.limiter.Check(middleware.UserFromCtx(c))
	return c.JSON(models.UsageResponse{
		Allowed:   status.Allowed,
		Remaining: status.Remaining,
		IsPro:     status.IsPro,
	})
}
