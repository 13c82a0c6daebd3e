package server

import (
	"encoding/base64"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/session"
)

func TestDeriveEncryptionKey(t *testing.T) {
	key := deriveEncryptionKey("some-session-secret")

	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		t.Fatalf("key is not base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("key length = %d bytes, want 32", len(raw))
	}

	if deriveEncryptionKey("some-session-secret") != key {
		t.Error("derivation is not deterministic")
	}
	if deriveEncryptionKey("other-secret") == key {
		t.Error("different secrets derived the same key")
	}
}

// TestEncryptCookieSessionRoundTrip verifies that the encryptcookie +
// session middleware stack survives a client replaying encrypted session
// cookies across requests, mirroring the production middleware order.
func TestEncryptCookieSessionRoundTrip(t *testing.T) {
	encryptionKey := deriveEncryptionKey("test-secret-that-is-long-enough-for-production")

	app := fiber.New()
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: encryptionKey,
	}))
	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	app.Post("/session-set", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Status(500).SendString("no session")
		}
		sess.Set("user_id", "user_1")
		return c.SendString("ok")
	})
	app.Get("/session-get", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Status(500).SendString("no session")
		}
		val, _ := sess.Get("user_id").(string)
		return c.SendString(val)
	})

	req, _ := http.NewRequest("POST", "/session-set", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("set request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("set request: expected 200, got %d: %s", resp.StatusCode, body)
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("set request returned no cookies")
	}

	req2, _ := http.NewRequest("GET", "/session-get", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	resp2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	body, _ := io.ReadAll(resp2.Body)
	if resp2.StatusCode != 200 {
		t.Fatalf("get request: expected 200, got %d: %s", resp2.StatusCode, body)
	}
	if string(body) != "user_1" {
		t.Errorf("session value = %q, want user_1", body)
	}
}
