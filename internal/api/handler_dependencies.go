package api

import (
	"time"

	"github.com/duet-app/duet/internal/db"
	"github.com/duet-app/duet/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:        database,
		secretKey: []byte(secretKey),
		location:  location,
		clock:     services.NewClock(location),
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)

	handler.authService = services.NewAuthService(handler.repositories.Accounts)
	handler.roleResolver = services.NewRoleResolver(handler.repositories.Links)
	matcher := services.NewAidMatcher(handler.repositories.Aids)
	handler.overviewService = services.NewOverviewService(
		handler.roleResolver,
		handler.repositories.Cycles,
		handler.repositories.Issues,
		handler.repositories.Lookouts,
		matcher,
		handler.clock,
	)
	handler.cycleService = services.NewCycleService(handler.roleResolver, handler.repositories.Cycles, handler.clock)
	handler.issueService = services.NewIssueService(handler.roleResolver, handler.repositories.Issues, handler.repositories.Cycles, handler.clock)
	handler.aidService = services.NewAidService(handler.roleResolver, handler.repositories.Aids)
	handler.lookoutService = services.NewLookoutService(handler.roleResolver, handler.repositories.Lookouts, handler.clock)
	handler.linkService = services.NewLinkService(handler.repositories.Links, handler.repositories.Accounts)
	handler.setupService = services.NewSetupService(handler.repositories.Accounts)
	return handler
}

// EnsureAdminAccount bootstraps the first admin on an empty database. The
// returned password is meant to be logged once at startup.
func (handler *Handler) EnsureAdminAccount(email string) (string, bool, error) {
	return handler.setupService.EnsureAdminAccount(email)
}
