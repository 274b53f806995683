package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"salesdesk/models"
	"salesdesk/store"
	"salesdesk/utils"
)

// refreshMargin is how close to expiry the access token may get before
// the response starts advising a refresh.
const refreshMargin = 2 * time.Minute

// SessionExpiringHeader is set on responses once the access token is
// within refreshMargin of expiry. The refresh exchange itself stays
// caller-driven: the front-end sees the header and invokes
// /auth/refresh, this middleware never refreshes on its own.
const SessionExpiringHeader = "X-Session-Expiring"

// RequireSession guards routes that need a signed-in operator. An
// expired access token is rejected outright; the caller refreshes and
// retries.
func RequireSession(sessions *store.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessions.AccessToken()
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sign in required", nil)
		}
		if utils.TokenExpired(token) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session expired, refresh required", nil)
		}
		if utils.TokenNeedsRefresh(token, refreshMargin) {
			c.Set(SessionExpiringHeader, "1")
		}

		user, ok := sessions.CurrentUser()
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sign in required", nil)
		}
		if !user.IsActive {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Account is not active", nil)
		}

		c.Locals("user", &user)
		c.Locals("companyID", user.CompanyID)
		return c.Next()
	}
}

// RequireAdmin gates the admin screens. Runs after RequireSession.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := c.Locals("user").(*models.User)
		if user == nil || user.Role != "admin" {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin access required", nil)
		}
		return c.Next()
	}
}
