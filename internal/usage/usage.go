// Package usage enforces the free-run quota. State lives in the
// identity provider's user metadata; anonymous visitors are gated only
// client-side, so the server-side check is best-effort by design.
package usage

import (
	"context"
	"log/slog"
	"time"

	"keywordforge/internal/identity"
)

// FreeLimit is the number of free generations per identity.
const FreeLimit = 1

// Unlimited marks quota statuses with no remaining-run bound.
const Unlimited = -1

// MetadataWriter is the slice of the identity admin API the limiter needs.
type MetadataWriter interface {
	UpdateUserMetadata(ctx context.Context, id string, patch identity.MetadataPatch) error
}

// Status is the outcome of a quota check.
type Status struct {
	Allowed   bool
	Remaining int
	IsPro     bool
	IsAdmin   bool
}

// Limiter decides whether a user may run a generation and records
// consumed free runs.
type Limiter struct {
	api         MetadataWriter
	adminEmails []string
	now         func() time.Time
}

// NewLimiter creates a Limiter. adminEmails get unlimited access.
func NewLimiter(api MetadataWriter, adminEmails []string) *Limiter {
	return &Limiter{api: api, adminEmails: adminEmails, now: time.Now}
}

// Check evaluates the quota for a user. user may be nil (anonymous):
// anonymous visitors are admitted with one remaining run and gated only
// by the client's local storage.
func (l *Limiter) Check(user *identity.User) Status {
	if l.isAdmin(user) {
		return Status{Allowed: true, Remaining: Unlimited, IsPro: true, IsAdmin: true}
	}

	if user != nil && user.PublicMetadata.IsPro {
		return Status{Allowed: true, Remaining: Unlimited, IsPro: true}
	}

	if user != nil {
		if user.PublicMetadata.FreeRunUsed {
			return Status{Allowed: false, Remaining: 0}
		}
		return Status{Allowed: true, Remaining: FreeLimit}
	}

	return Status{Allowed: true, Remaining: FreeLimit}
}

// Increment marks the free run as consumed. No-op for anonymous, admin,
// and pro users. The check-then-set against the provider is not atomic;
// duplicate concurrent requests can both be admitted, which is an
// accepted property of this gate.
func (l *Limiter) Increment(ctx context.Context, user *identity.User) error {
	if user == nil || l.isAdmin(user) || user.PublicMetadata.IsPro {
		return nil
	}

	err := l.api.UpdateUserMetadata(ctx, user.ID, identity.MetadataPatch{
		FreeRunUsed: identity.Bool(true),
		FreeRunDate: identity.String(l.now().UTC().Format(time.RFC3339)),
	})
	if err != nil {
		slog.Error("failed to record free run", "user_id", user.ID, "error", err)
		return err
	}
	return nil
}

func (l *Limiter) isAdmin(user *identity.User) bool {
	for _, email := range l.adminEmails {
		if user.HasEmail(email) {
			return true
		}
	}
	return false
}
