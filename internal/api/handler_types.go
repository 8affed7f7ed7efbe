package api

import (
	"time"

	"github.com/duet-app/duet/internal/db"
	"github.com/duet-app/duet/internal/models"
	"github.com/duet-app/duet/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Handler struct {
	db        *gorm.DB
	secretKey []byte
	location  *time.Location

	repositories *db.Repositories
	clock        services.Clock

	authService     *services.AuthService
	roleResolver    *services.RoleResolver
	overviewService *services.OverviewService
	cycleService    *services.CycleService
	issueService    *services.IssueService
	aidService      *services.AidService
	lookoutService  *services.LookoutService
	linkService     *services.LinkService
	setupService    *services.SetupService
}

type authClaims struct {
	AccountID uint `json:"uid"`
	jwt.RegisteredClaims
}

const (
	authHeaderPrefix  = "Bearer "
	authCookieName    = "duet_auth"
	contextAccountKey = "current_account"
)

const defaultAuthTokenTTL = 7 * 24 * time.Hour

func currentAccount(c *fiber.Ctx) (*models.Account, bool) {
	account, ok := c.Locals(contextAccountKey).(*models.Account)
	return account, ok
}
