package api

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"

	"keywordforge/internal/identity"
)

// MetadataWriter is the slice of the identity admin API the webhook needs.
type MetadataWriter interface {
	UpdateUserMetadata(ctx context.Context, id string, patch identity.MetadataPatch) error
}

// constructEvent verifies a webhook payload signature. Swapped in tests.
type constructEvent func(payload []byte, header, secret string) (stripe.Event, error)

// WebhookHandler serves POST /api/webhook. Stripe is the source of
// truth for subscription state; this handler mirrors it into the
// identity provider's user metadata.
type WebhookHandler struct {
	secret    string
	api       MetadataWriter
	construct constructEvent
}

// NewWebhookHandler creates a webhook handler.
func NewWebhookHandler(secret string, api MetadataWriter) *WebhookHandler {
	return &WebhookHandler{secret: secret, api: api, construct: webhook.ConstructEvent}
}

// Webhook handles Stripe events. Unhandled event types are acknowledged
// so Stripe stops retrying them.
func (h *WebhookHandler) Webhook(c fiber.Ctx) error {
	event, err := h.construct(c.Body(), c.Get("Stripe-Signature"), h.secret)
	if err != nil {
		slog.Warn("webhook signature verification failed", "error", err)
		return jsonError(c, fiber.StatusBadRequest, "Invalid signature")
	}

	switch event.Type {
	case "checkout.session.completed":
		err = h.handleCheckoutCompleted(c.Context(), event)
	case "customer.subscription.deleted":
		err = h.handleSubscriptionDeleted(c.Context(), event)
	default:
		slog.Debug("ignoring webhook event", "type", event.Type)
	}
	if err != nil {
		slog.Error("webhook handling failed", "type", event.Type, "error", err)
		// Non-2xx makes Stripe retry with backoff.
		return jsonError(c, fiber.StatusInternalServerError, "Webhook handling failed")
	}

	return c.JSON(fiber.Map{"received": true})
}

func (h *WebhookHandler) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return err
	}

	userID := sess.ClientReferenceID
	if userID == "" {
		slog.Warn("checkout session has no client reference", "session_id", sess.ID)
		return nil
	}

	patch := identity.MetadataPatch{IsPro: identity.Bool(true)}
	if sess.Customer != nil {
		patch.StripeCustomerID = identity.String(sess.Customer.ID)
	}
	if sess.Subscription != nil {
		patch.SubscriptionID = identity.String(sess.Subscription.ID)
	}

	if err := h.api.UpdateUserMetadata(ctx, userID, patch); err != nil {
		return err
	}
	slog.Info("activated pro subscription", "user_id", userID)
	return nil
}

func (h *WebhookHandler) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return err
	}

	userID := sub.Metadata["userId"]
	if userID == "" {
		slog.Warn("subscription has no user metadata", "subscription_id", sub.ID)
		return nil
	}

	if err := h.api.UpdateUserMetadata(ctx, userID, identity.MetadataPatch{
		IsPro: identity.Bool(false),
	}); err != nil {
		return err
	}
	slog.Info("deactivated pro subscription", "user_id", userID)
	return nil
}
