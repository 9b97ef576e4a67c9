// Package middleware holds the request middleware owned by this service.
// The stock Fiber middleware (cors, limiter, recover, requestid) is wired
// in the server bootstrap.
package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/cobreklo/portafolio-api/internal/api/auth/models"
	basehdl "github.com/cobreklo/portafolio-api/internal/api/base/handler"
	"github.com/cobreklo/portafolio-api/internal/common"
)

const (
	localsUserKey = "currentUser"
	localsHwidKey = "currentHwid"
)

// TokenValidator checks a bearer token and resolves its user plus the
// token's device hwid. Caching of validated tokens is the validator's
// concern, so it can also invalidate on logout.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*authmodels.User, string, error)
}

// RequireAuth gates a route group on a valid bearer token. The resolved
// user and the token's device hwid land in Locals for handlers.
func RequireAuth(validator TokenValidator) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return basehdl.Failure(c, common.ErrTokenMissing)
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return basehdl.Failure(c, common.ErrTokenInvalid)
		}

		user, hwid, err := validator.ValidateToken(c.Context(), token)
		if err != nil {
			return basehdl.Failure(c, err)
		}

		c.Locals(localsUserKey, user)
		c.Locals(localsHwidKey, hwid)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user placed by RequireAuth.
func CurrentUser(c fiber.Ctx) (*authmodels.User, error) {
	user, ok := c.Locals(localsUserKey).(*authmodels.User)
	if !ok || user == nil {
		return nil, common.ErrTokenMissing
	}
	return user, nil
}

// CurrentHwid returns the device hwid of the presented token, empty when
// the request did not pass RequireAuth.
func CurrentHwid(c fiber.Ctx) string {
	hwid, _ := c.Locals(localsHwidKey).(string)
	return hwid
}
