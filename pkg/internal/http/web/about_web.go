package web

import (
	pkg "git.solsynth.dev/hypernet/yatube/pkg/internal"
	"github.com/gofiber/fiber/v2"
)

func aboutAuthor(c *fiber.Ctx) error {
	return render(c, "about/author", fiber.Map{
		"Title": "About the author",
	})
}

func aboutTech(c *fiber.Ctx) error {
	return render(c, "about/tech", fiber.Map{
		"Title":   "Technologies",
		"Version": pkg.AppVersion,
	})
}
