package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	api.Get("/catalog", handler.GetCatalog)

	api.Get("/overview", handler.AuthRequired, handler.GetOverview)

	links := api.Group("/links", handler.AuthRequired)
	links.Post("/claim", handler.ClaimLink)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.GetRecentCycles)
	cycles.Post("/start", handler.StartCycle)
	cycles.Get("/:id/issues", handler.GetCycleIssues)
	cycles.Post("/:id/end", handler.EndCycle)

	issues := api.Group("/issues", handler.AuthRequired)
	issues.Get("", handler.GetIssues)
	issues.Post("", handler.LogIssue)

	aids := api.Group("/aids", handler.AuthRequired)
	aids.Get("/custom", handler.GetCustomAids)
	aids.Post("/custom", handler.CreateCustomAid)
	aids.Post("/custom/:id/deactivate", handler.DeactivateCustomAid)

	lookouts := api.Group("/lookouts", handler.AuthRequired)
	lookouts.Get("", handler.GetLookouts)
	lookouts.Post("", handler.CreateLookout)
	lookouts.Post("/:id/seen", handler.MarkLookoutSeen)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminRequired)
	admin.Post("/links", handler.AdminCreateLink)
	admin.Post("/links/:id/partner", handler.AdminReassignPartner)
	admin.Post("/aids/curated", handler.AdminCreateCuratedAid)
	admin.Post("/lookouts", handler.AdminCreateLookout)
}
