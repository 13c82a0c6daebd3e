package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/stripe/stripe-go/v78"
	checkoutsession "github.com/stripe/stripe-go/v78/checkout/session"

	"keywordforge/internal/config"
	"keywordforge/internal/middleware"
	"keywordforge/internal/models"
)

// createSession creates a Stripe checkout session. Swapped in tests.
type createSession func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

// CheckoutHandler serves POST /api/checkout.
type CheckoutHandler struct {
	cfg    *config.Config
	create createSession
}

// NewCheckoutHandler creates a checkout handler.
func NewCheckoutHandler(cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{cfg: cfg, create: checkoutsession.New}
}

// Checkout starts a Pro subscription checkout for the signed-in user.
// The user's identity ID rides along as the client reference and in the
// subscription metadata so webhooks can find the user again.
func (h *CheckoutHandler) Checkout(c fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	if user == nil {
		return jsonError(c, fiber.StatusUnauthorized, "Sign in to upgrade")
	}
	if !h.cfg.BillingEnabled() {
		return jsonError(c, fiber.StatusServiceUnavailable, "Billing is not configured")
	}
	if user.PublicMetadata.IsPro {
		return jsonError(c, fiber.StatusBadRequest, "You already have a Pro subscription")
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(h.cfg.StripePriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(h.cfg.BaseURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripe.String(h.cfg.BaseURL + "/pricing"),
		ClientReferenceID: stripe.String(user.ID),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{"userId": user.ID},
		},
	}
	if email := user.PrimaryEmail(); email != "" {
		params.CustomerEmail = stripe.String(email)
	}

	sess, err := h.create(params)
	if err != nil {
		slog.Error("failed to create checkout session", "user_id", user.ID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to start checkout. Please try again.")
	}

	return c.JSON(models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
	})
}
