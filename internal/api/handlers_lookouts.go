package api

import (
	"github.com/duet-app/duet/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetLookouts(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	lookouts, err := handler.lookoutService.ActiveLookouts(account.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"lookouts": lookouts})
}

func (handler *Handler) CreateLookout(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := lookoutCreateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	serviceInput, ok := handler.buildLookoutInput(input)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	lookout, err := handler.lookoutService.CreateLookout(account.ID, serviceInput)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lookout)
}

func (handler *Handler) MarkLookoutSeen(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	lookoutID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid lookout id")
	}

	lookout, err := handler.lookoutService.MarkLookoutSeen(account.ID, lookoutID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(lookout)
}

func (handler *Handler) buildLookoutInput(input lookoutCreateInput) (services.LookoutInput, bool) {
	showOn, ok := handler.parseDate(input.ShowOnDate)
	if !ok {
		return services.LookoutInput{}, false
	}
	showUntil, ok := handler.parseOptionalDate(input.ShowUntilDate)
	if !ok {
		return services.LookoutInput{}, false
	}
	return services.LookoutInput{
		Title:         input.Title,
		Description:   input.Description,
		ShowOnDate:    showOn,
		ShowUntilDate: showUntil,
		Priority:      input.Priority,
	}, true
}
