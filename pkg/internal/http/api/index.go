package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapControllers(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		posts := api.Group("/posts")
		{
			posts.Get("/", listPost)
			posts.Get("/:postId", getPost)
		}

		groups := api.Group("/groups")
		{
			groups.Get("/", listGroup)
			groups.Get("/:slug", getGroup)
		}

		api.Get("/users/:name", getUser)
	}
}
