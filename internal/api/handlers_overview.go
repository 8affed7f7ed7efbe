package api

import "github.com/gofiber/fiber/v2"

// GetOverview is the one read model the mobile client consumes. Accounts
// without a link get role "none" and empty collections.
func (handler *Handler) GetOverview(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.overviewService.GetOverview(account.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(overview)
}
