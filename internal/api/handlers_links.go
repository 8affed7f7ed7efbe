package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClaimLink attaches the requester as partner on the link matching the
// invite code.
func (handler *Handler) ClaimLink(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := claimLinkInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.InviteCode) == "" {
		return apiError(c, fiber.StatusBadRequest, "invite code is required")
	}

	link, err := handler.linkService.ClaimLink(account.ID, strings.TrimSpace(input.InviteCode))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(link)
}
