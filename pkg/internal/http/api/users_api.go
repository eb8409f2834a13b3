package api

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

type userProfile struct {
	models.User
	PostCount int64 `json:"post_count"`
}

func getUser(c *fiber.Ctx) error {
	user, err := services.GetAccountWithName(c.Params("name"))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	count, err := services.CountAuthorPost(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(userProfile{User: user, PostCount: count})
}
