package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestCarriesRequestID(t *testing.T) {
	require.NoError(t, Init(&LogConfig{Level: "info", Format: "text", Output: "console"}))

	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Header: "X-Request-ID"}))

	var gotID interface{}
	app.Get("/ping", func(c fiber.Ctx) error {
		entry := WithRequest(c)
		gotID = entry.Data["request_id"]
		assert.Equal(t, "GET", entry.Data["method"])
		assert.Equal(t, "/ping", entry.Data["path"])
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NotNil(t, gotID)
	assert.Equal(t, resp.Header.Get("X-Request-ID"), gotID)
}

func TestWithRequestFallsBackToHeader(t *testing.T) {
	require.NoError(t, Init(&LogConfig{Level: "info", Format: "text", Output: "console"}))

	app := fiber.New()
	app.Get("/ping", func(c fiber.Ctx) error {
		assert.Equal(t, "req-42", WithRequest(c).Data["request_id"])
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
}
