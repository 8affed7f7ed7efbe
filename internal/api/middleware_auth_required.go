package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	account, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextAccountKey, account)
	return c.Next()
}

func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok || !account.IsAdmin {
		return apiError(c, fiber.StatusForbidden, "admin required")
	}
	return c.Next()
}
