package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fleet-web/internal/config"
	"fleet-web/internal/utils"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Invalid authorization header format")
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Invalid or expired token")
		}
		if claims.TokenType != "access" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Access token required")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("company_id", claims.CompanyID)
		c.Locals("carrier_id", claims.CarrierID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("role") != "ADMIN" {
			return utils.ErrorResponse(c, fiber.StatusForbidden, utils.CodeUnauthorized, "Admin access required")
		}
		return c.Next()
	}
}
