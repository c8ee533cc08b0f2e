// Package web serves the prebuilt front-end bundle with single-page-app
// routing: unknown non-API paths fall back to the bundle's entry document.
package web

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Placeholder is returned when the bundle has not been built yet. The
// response is still HTTP 200 so probes against / keep passing.
const Placeholder = "Frontend bundle not built. Copy the web build into the configured PUBLIC_DIR."

// Register mounts static serving of dir plus the SPA fallback. It must be
// registered after the API routes so the fallback only sees unmatched
// paths.
func Register(app *fiber.App, dir string) {
	app.Static("/", dir)

	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.SendStatus(fiber.StatusNotFound)
		}
		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			return c.SendString(Placeholder)
		}
		return c.SendFile(index)
	})
}
