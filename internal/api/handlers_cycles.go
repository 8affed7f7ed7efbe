package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) StartCycle(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := startCycleInput{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
	}

	cycle, err := handler.cycleService.StartCycle(account.ID, input.Notes)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cycle)
}

func (handler *Handler) EndCycle(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	cycleID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	cycle, err := handler.cycleService.EndCycle(account.ID, cycleID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(cycle)
}

func (handler *Handler) GetRecentCycles(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycles, err := handler.cycleService.RecentCycles(account.ID, c.QueryInt("limit"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"cycles": cycles})
}
