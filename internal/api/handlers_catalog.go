package api

import (
	"github.com/duet-app/duet/internal/models"
	"github.com/gofiber/fiber/v2"
)

// GetCatalog exposes the fixed vocabularies the client builds its pickers
// from.
func (handler *Handler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"problems":       models.KnownProblems(),
		"aid_categories": models.KnownAidCategories(),
	})
}
