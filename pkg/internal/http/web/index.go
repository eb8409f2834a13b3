package web

import (
	"github.com/gofiber/fiber/v2"
)

const layout = "layouts/main"

func MapControllers(app *fiber.App) {
	app.Get("/", listPost)
	app.Get("/group/:slug", listGroupPost)
	app.Get("/profile/:username", listAuthorPost)
	app.Get("/create", createPost)
	app.Post("/create", createPost)

	posts := app.Group("/posts")
	{
		posts.Get("/:postId", getPost)
		posts.Get("/:postId/edit", editPost)
		posts.Post("/:postId/edit", editPost)
	}

	auth := app.Group("/auth")
	{
		auth.Get("/signup", signup)
		auth.Post("/signup", signup)
		auth.Get("/login", login)
		auth.Post("/login", login)
		auth.All("/logout", logout)
	}

	about := app.Group("/about")
	{
		about.Get("/author", aboutAuthor)
		about.Get("/tech", aboutTech)
	}
}

func render(c *fiber.Ctx, view string, bind fiber.Map) error {
	return c.Render(view, bind, layout)
}
