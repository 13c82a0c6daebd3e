// Package handlers contains the HTML page handlers.
package handlers

import (
	"github.com/gofiber/fiber/v3"

	"keywordforge/internal/config"
	"keywordforge/internal/middleware"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	cfg    *config.Config
	topics []string
}

// NewPageHandler creates a new page handler. topics are the example
// topics shown on the generate page.
func NewPageHandler(cfg *config.Config, topics []string) *PageHandler {
	return &PageHandler{cfg: cfg, topics: topics}
}

// viewData builds the base template data shared by every page.
func (h *PageHandler) viewData(c fiber.Ctx, title string) fiber.Map {
	data := fiber.Map{
		"Title":       title,
		"SiteTitle":   h.cfg.SiteTitle,
		"SiteTagline": h.cfg.SiteTagline,
	}
	if user := middleware.UserFromCtx(c); user != nil {
		data["User"] = user
		data["UserEmail"] = user.PrimaryEmail()
		data["IsPro"] = user.PublicMetadata.IsPro
	}
	return data
}

// Index renders the landing page.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", h.viewData(c, h.cfg.SiteTitle))
}

// Onboarding renders the three-step questionnaire wizard.
func (h *PageHandler) Onboarding(c fiber.Ctx) error {
	return c.Render("onboarding", h.viewData(c, "Tell us about your business"))
}

// Generate renders the keyword generation page. Visitors who skipped
// the wizard are sent back to it by the client once it finds no stored
// answers.
func (h *PageHandler) Generate(c fiber.Ctx) error {
	data := h.viewData(c, "Generate keywords")
	data["ExampleTopics"] = h.topics
	return c.Render("generate", data)
}

// Pricing renders the plan comparison page.
func (h *PageHandler) Pricing(c fiber.Ctx) error {
	return c.Render("pricing", h.viewData(c, "Pricing"))
}

// Success renders the post-checkout confirmation page.
func (h *PageHandler) Success(c fiber.Ctx) error {
	return c.Render("success", h.viewData(c, "Welcome to Pro"))
}

// Login renders the login page.
func (h *PageHandler) Login(c fiber.Ctx) error {
	// Already signed in, nothing to do here.
	if middleware.UserFromCtx(c) != nil {
		return c.Redirect().To("/generate")
	}
	return c.Render("login", h.viewData(c, "Sign in"))
}
