package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

// AuthMiddleware guards the moderator dashboard via session cookies.
type AuthMiddleware struct {
	store         *session.Store
	allowedEmails []string
}

// NewAuthMiddleware creates a new auth middleware instance. allowedEmails is
// the lowercase moderator allow-list.
func NewAuthMiddleware(store *session.Store, allowedEmails []string) *AuthMiddleware {
	return &AuthMiddleware{store: store, allowedEmails: allowedEmails}
}

// RequireModerator ensures the session belongs to an allow-listed moderator.
func (m *AuthMiddleware) RequireModerator(c fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	email, _ := sess.Get("user_email").(string)
	if email == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	if !slices.Contains(m.allowedEmails, email) {
		return fiber.NewError(fiber.StatusForbidden, "moderator access required")
	}

	c.Locals("user_email", email)
	return c.Next()
}
