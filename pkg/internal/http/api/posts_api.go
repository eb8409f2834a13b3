package api

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a positive number")
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	return c.JSON(item)
}

func listPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", services.PostPageSize())
	offset := c.QueryInt("offset", 0)

	tx, err := services.UniversalPostFilter(c, database.C)
	if err != nil {
		return err
	}

	count, err := services.CountPost(tx.Session(&gorm.Session{}))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx.Session(&gorm.Session{}), take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if c.QueryBool("truncate", true) {
		items = lo.Map(items, func(item models.Post, _ int) models.Post {
			return services.TruncatePostContent(item)
		})
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}
