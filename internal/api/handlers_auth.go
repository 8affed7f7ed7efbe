package api

import (
	"errors"

	"github.com/duet-app/duet/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateCredentials(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	exists, err := handler.authService.RegistrationEmailExists(input.Email)
	if err != nil {
		return serviceError(c, err)
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	account, err := handler.authService.Register(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	token, err := handler.buildToken(&account, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setAuthCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"account": account,
		"token":   token,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	account, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := handler.buildToken(&account, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"account": account,
		"token":   token,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.authService.ChangePassword(account.ID, input.CurrentPassword, input.NewPassword)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if errors.Is(err, services.ErrValidation) {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters")
	}
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
