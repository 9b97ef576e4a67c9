package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/cobreklo/portafolio-api/config"
	basehdl "github.com/cobreklo/portafolio-api/internal/api/base/handler"
	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/logger"
)

// newFiberApp builds the app with the middleware stack: request ids,
// panic recovery, security headers, CORS and the optional rate limiter.
// The worst a broken handler produces is an error envelope on one
// request.
func newFiberApp(cfg *config.Configuration) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "portafolio-api",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // SSE streams stay open
		ErrorHandler: func(c fiber.Ctx, err error) error {
			return basehdl.Failure(c, err)
		},
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e any) {
			logger.WithRequest(c).Errorf("Panic recovered: %v", e)
		},
	}))

	allowOrigins := strings.Split(cfg.CORS_Origins, ",")
	for i, origin := range allowOrigins {
		allowOrigins[i] = strings.TrimSpace(origin)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
	}))

	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return basehdl.Failure(c, common.NewError(common.ErrCodeBusinessOperation,
					"Demasiadas solicitudes", common.StatusTooManyRequests, nil))
			},
			Next: func(c fiber.Ctx) bool {
				// Streams hold one request open for their whole lifetime.
				return c.Path() == "/health" || c.Method() == "OPTIONS" ||
					strings.HasPrefix(c.Path(), "/api/v1/subscribe/")
			},
		}))
	}

	app.Get("/health", func(c fiber.Ctx) error {
		return basehdl.Success(c, map[string]string{"status": "ok"})
	})

	return app
}
