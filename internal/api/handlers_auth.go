package api

import (
	"errors"

	"github.com/alderwick/voicelog/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	var input signupInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.RegisterUser(input.Username, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserValidation):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrDuplicateUsername):
			return apiError(c, fiber.StatusBadRequest, "username already exists")
		default:
			handler.logger.Error("signup failed", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "failed to create user")
		}
	}

	handler.logger.Info("user created", zap.Uint("user_id", user.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User created successfully"})
}

func (handler *Handler) ObtainToken(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(input.Username, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	access, refresh, err := handler.issueTokenPair(user.ID)
	if err != nil {
		handler.logger.Error("token issuance failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create tokens")
	}

	return c.JSON(fiber.Map{"access": access, "refresh": refresh})
}

func (handler *Handler) RefreshToken(c *fiber.Ctx) error {
	var input refreshInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	claims, err := handler.parseToken(input.Refresh, tokenTypeRefresh)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid refresh token")
	}
	if _, err := handler.authService.FindByID(claims.UserID); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid refresh token")
	}

	access, err := handler.issueToken(claims.UserID, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		handler.logger.Error("token refresh failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return c.JSON(fiber.Map{"access": access})
}
