package middleware

import (
	"stockroom/internal/models"
	"stockroom/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TokenHeader is the request header carrying the access token.
const TokenHeader = "auth"

const (
	localUser   = "user"
	localClaims = "claims"
)

// AuthRequired is a Fiber middleware that admits requests carrying a valid
// token for an existing user. Every rejection uses status 402.
func AuthRequired(authService *services.AuthService, logger logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(TokenHeader)
		if token == "" {
			return deny(c, "Not Authorized")
		}

		claims, err := authService.VerifyToken(c.UserContext(), token)
		if err != nil {
			logger.WithError(err).WithField("path", c.Path()).Debug("token rejected")
			return deny(c, "Not Authorized to view this page")
		}

		user, err := authService.ResolveUser(c.UserContext(), claims)
		if err != nil {
			logger.WithError(err).WithField("user_id", claims.UserID).Info("token for unknown user")
			return deny(c, "Not authorized to access this route, wrong user")
		}

		// Store the caller for subsequent handlers
		c.Locals(localUser, user)
		c.Locals(localClaims, claims)

		return c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localUser).(*models.User)
	return user
}

// CurrentClaims returns the token claims verified by AuthRequired, or nil.
func CurrentClaims(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(localClaims).(*services.Claims)
	return claims
}

func deny(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
