package api

import (
	"github.com/duet-app/duet/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) LogIssue(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := logIssueInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	issue, err := handler.issueService.LogIssue(account.ID, services.IssueInput{
		Problem:  input.Problem,
		Severity: input.Severity,
		Notes:    input.Notes,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(issue)
}

// GetIssues lists issues for one day. Defaults to today when no ?date is
// given.
func (handler *Handler) GetIssues(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day := handler.clock.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, ok := handler.parseDate(raw)
		if !ok {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		day = parsed
	}

	issues, err := handler.issueService.IssuesForDay(account.ID, day)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"issues": issues})
}

func (handler *Handler) GetCycleIssues(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	cycleID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	issues, err := handler.issueService.IssuesForCycle(account.ID, cycleID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"issues": issues})
}
