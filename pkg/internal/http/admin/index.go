package admin

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL)
	{
		admin.Post("/groups", ensureAdministrator, createGroup)
		admin.Put("/groups/:slug", ensureAdministrator, editGroup)
		admin.Delete("/groups/:slug", ensureAdministrator, deleteGroup)
	}
}

func ensureAdministrator(c *fiber.Ctx) error {
	if err := exts.EnsureAdministrator(c); err != nil {
		return err
	}
	return c.Next()
}
