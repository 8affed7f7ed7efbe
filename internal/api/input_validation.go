package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/duet-app/duet/internal/services"
	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

func (handler *Handler) parseDate(raw string) (time.Time, bool) {
	parsed, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), handler.location)
	if err != nil {
		return time.Time{}, false
	}
	return services.DateAtLocation(parsed, handler.location), true
}

func (handler *Handler) parseOptionalDate(raw string) (*time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	parsed, ok := handler.parseDate(raw)
	if !ok {
		return nil, false
	}
	return &parsed, true
}

func validateCredentials(input credentialsInput) string {
	if strings.TrimSpace(input.Email) == "" || !strings.Contains(input.Email, "@") {
		return "a valid email is required"
	}
	if len(input.Password) < 8 {
		return "password must be at least 8 characters"
	}
	return ""
}
