package api

import (
	"github.com/duet-app/duet/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateCustomAid(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := customAidInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	aid, err := handler.aidService.CreateCustomAid(account.ID, services.AidInput{
		Problem:     input.Problem,
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(aid)
}

func (handler *Handler) DeactivateCustomAid(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	aidID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid aid id")
	}

	aid, err := handler.aidService.DeactivateCustomAid(account.ID, aidID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(aid)
}

func (handler *Handler) GetCustomAids(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	aids, err := handler.aidService.ListCustomAids(account.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"aids": aids})
}
