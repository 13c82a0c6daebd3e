package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"keywordforge/internal/identity"
)

// UserFetcher is the slice of the identity admin API the middleware needs.
type UserFetcher interface {
	GetUser(ctx context.Context, id string) (*identity.User, error)
}

// AuthMiddleware handles user authentication via sessions. The session
// holds only the identity provider's user ID; the user record itself is
// fetched fresh per request so plan changes take effect immediately.
type AuthMiddleware struct {
	store *session.Store
	users UserFetcher
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(store *session.Store, users UserFetcher) *AuthMiddleware {
	return &AuthMiddleware{store: store, users: users}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return c.Redirect().To("/login")
	}

	userID := sess.Get("user_id")
	if userID == nil {
		return c.Redirect().To("/login")
	}

	user, err := m.users.GetUser(c.Context(), userID.(string))
	if err != nil {
		sess.Destroy()
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return c.Next()
	}

	userID := sess.Get("user_id")
	if userID == nil {
		return c.Next()
	}

	user, err := m.users.GetUser(c.Context(), userID.(string))
	if err == nil {
		c.Locals("user", user)
	}

	return c.Next()
}

// UserFromCtx returns the authenticated user, or nil for anonymous requests.
func UserFromCtx(c fiber.Ctx) *identity.User {
	user, _ := c.Locals("user").(*identity.User)
	return user
}
