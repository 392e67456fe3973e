package middleware

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

// newAuthApp builds an app with a login helper route that stores the given
// email in the session, plus a guarded route.
func newAuthApp(allowedEmails []string) *fiber.App {
	app := fiber.New()

	sessionMiddleware, store := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	auth := NewAuthMiddleware(store, allowedEmails)

	app.Post("/login/:email", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		sess.Set("user_email", c.Params("email"))
		return c.SendString("ok")
	})
	app.Get("/guarded", auth.RequireModerator, func(c fiber.Ctx) error {
		email, _ := c.Locals("user_email").(string)
		return c.SendString(email)
	})

	return app
}

func login(t *testing.T, app *fiber.App, email string) []*http.Cookie {
	t.Helper()
	req, _ := http.NewRequest("POST", "/login/"+email, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("login returned no session cookie")
	}
	return cookies
}

func TestRequireModerator_AllowListedEmail(t *testing.T) {
	app := newAuthApp([]string{"mod@example.org"})
	cookies := login(t, app, "mod@example.org")

	req, _ := http.NewRequest("GET", "/guarded", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("guarded request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

func TestRequireModerator_NotAllowListed(t *testing.T) {
	app := newAuthApp([]string{"mod@example.org"})
	cookies := login(t, app, "intruder@example.org")

	req, _ := http.NewRequest("GET", "/guarded", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("guarded request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
	}
}

func TestRequireModerator_NoSession(t *testing.T) {
	app := newAuthApp([]string{"mod@example.org"})

	req, _ := http.NewRequest("GET", "/guarded", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("guarded request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
