package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmodels "github.com/cobreklo/portafolio-api/internal/api/auth/models"
	"github.com/cobreklo/portafolio-api/internal/common"
)

type stubValidator struct {
	user *authmodels.User
	hwid string
	err  error
}

func (s stubValidator) ValidateToken(context.Context, string) (*authmodels.User, string, error) {
	return s.user, s.hwid, s.err
}

func TestRequireAuthStoresUserAndTokenHwid(t *testing.T) {
	app := fiber.New()
	app.Get("/me", func(c fiber.Ctx) error {
		user, err := CurrentUser(c)
		require.NoError(t, err)
		return c.SendString(user.Email + "|" + CurrentHwid(c))
	}, RequireAuth(stubValidator{
		user: &authmodels.User{Email: "admin@localhost"},
		hwid: "tablet",
	}))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	// The logout default comes from the token's claims, not the body.
	assert.Equal(t, "admin@localhost|tablet", string(body))
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app := fiber.New()
	app.Get("/me", func(c fiber.Ctx) error {
		return c.SendString("ok")
	}, RequireAuth(stubValidator{}))

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	app := fiber.New()
	app.Get("/me", func(c fiber.Ctx) error {
		return c.SendString("ok")
	}, RequireAuth(stubValidator{err: common.ErrTokenInvalid}))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer bad")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
}

func TestCurrentHwidEmptyWithoutAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		assert.Empty(t, CurrentHwid(c))
		_, err := CurrentUser(c)
		assert.Error(t, err)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
}
