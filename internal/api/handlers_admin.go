package api

import (
	"github.com/duet-app/duet/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AdminCreateLink(c *fiber.Ctx) error {
	input := createLinkInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.TrackedAccountID == 0 {
		return apiError(c, fiber.StatusBadRequest, "tracked_account_id is required")
	}

	link, err := handler.linkService.CreateLink(input.TrackedAccountID, input.PartnerID)
	if err != nil {
		return serviceError(c, err)
	}
	// The invite code is hidden from regular link payloads; the admin who
	// created the link is the one who hands it to the partner.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"link":        link,
		"invite_code": link.InviteCode,
	})
}

func (handler *Handler) AdminReassignPartner(c *fiber.Ctx) error {
	linkID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid link id")
	}

	input := reassignPartnerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	link, err := handler.linkService.ReassignPartner(linkID, input.PartnerID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(link)
}

func (handler *Handler) AdminCreateCuratedAid(c *fiber.Ctx) error {
	input := curatedAidInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	aid, err := handler.aidService.CreateCuratedAid(services.CuratedAidInput{
		Problem:      input.Problem,
		Category:     input.Category,
		Title:        input.Title,
		Description:  input.Description,
		Priority:     input.Priority,
		ForAccountID: input.ForAccountID,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(aid)
}

func (handler *Handler) AdminCreateLookout(c *fiber.Ctx) error {
	input := adminLookoutInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.TrackedAccountID == 0 {
		return apiError(c, fiber.StatusBadRequest, "tracked_account_id is required")
	}
	serviceInput, ok := handler.buildLookoutInput(input.lookoutCreateInput)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	lookout, err := handler.lookoutService.CreateAdminLookout(input.TrackedAccountID, serviceInput)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lookout)
}
