package handler

import (
	"github.com/gofiber/fiber/v2"

	"fleet-web/internal/models"
	"fleet-web/internal/service"
	"fleet-web/internal/utils"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeParseError, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeParseError, "Email and password are required")
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, resp)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeParseError, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeParseError, "Email and password are required")
	}

	user, err := h.authService.Register(req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeParseError, err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err != nil || body.RefreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeParseError, "refresh_token is required")
	}

	resp, err := h.authService.Refresh(body.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.GetUserByID(localString(c, "user_id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, utils.CodeNotFound, "User not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Tokens are stateless; clients discard them on logout.
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}
