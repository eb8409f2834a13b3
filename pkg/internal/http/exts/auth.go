package exts

import (
	"net/url"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/cache"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	LoginPath       = "/auth/login/"
	sessionUserKey  = "user"
	sessionCookieID = "yatube_session"
)

var Sessions *session.Store

func NewSessionStore() {
	Sessions = session.New(session.Config{
		Storage:        cache.NewSessionStorage(),
		Expiration:     viper.GetDuration("security.session_ttl"),
		KeyLookup:      "cookie:" + sessionCookieID,
		CookiePath:     "/",
		CookieSecure:   viper.GetBool("security.cookie_secure"),
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		KeyGenerator:   uuid.NewString,
	})
}

// ContextMiddleware resolves the signed in user of the session into the request context.
func ContextMiddleware(c *fiber.Ctx) error {
	sess, err := Sessions.Get(c)
	if err != nil {
		log.Warn().Err(err).Msg("Unable to load session, continue as anonymous...")
		return c.Next()
	}

	if id, ok := sess.Get(sessionUserKey).(uint); ok {
		if user, err := services.GetAccountWithID(id); err == nil {
			c.Locals("user", user)
			_ = c.Bind(fiber.Map{"User": user})
		}
	}

	return c.Next()
}

// GetCurrentUser returns the principal of the request, nil means anonymous.
func GetCurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals("user").(models.User); ok {
		return &user
	}
	return nil
}

func SignIn(c *fiber.Ctx, user models.User) error {
	sess, err := Sessions.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionUserKey, user.ID)
	return sess.Save()
}

func SignOut(c *fiber.Ctx) error {
	sess, err := Sessions.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// LoginURL builds the login link which brings the user back to target afterwards.
func LoginURL(target string) string {
	return LoginPath + "?next=" + strings.ReplaceAll(url.QueryEscape(target), "%2F", "/")
}

// RedirectToLogin sends an anonymous user to the login page with the current url as return path.
func RedirectToLogin(c *fiber.Ctx) error {
	return c.Redirect(LoginURL(c.OriginalURL()))
}

// IsSafeRedirect accepts local absolute paths only.
func IsSafeRedirect(target string) bool {
	return strings.HasPrefix(target, "/") &&
		!strings.HasPrefix(target, "//") &&
		!strings.HasPrefix(target, "/\\")
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if GetCurrentUser(c) == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return nil
}

func EnsureAdministrator(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	if !services.IsAdministrator(*GetCurrentUser(c)) {
		return fiber.NewError(fiber.StatusForbidden, "administrator permission required")
	}
	return nil
}
