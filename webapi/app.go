// Package webapi assembles the fiber application.
package webapi

import (
	"errors"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/webapi/client"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
)

// New builds the fiber app with panic recovery, per-IP rate limiting and the
// client routes mounted.
func New(svc client.ClientService, cfg *config.App) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "banking",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
			return common.ErrorResponseJSON(c, status, utils.StatusMessage(status), err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests,
				"Too Many Requests", "rate limit exceeded")
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	client.Routes(app, svc)

	return app
}
