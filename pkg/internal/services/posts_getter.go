package services

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UniversalPostFilter narrows the query by the group and author query parameters.
func UniversalPostFilter(c *fiber.Ctx, tx *gorm.DB) (*gorm.DB, error) {
	if len(c.Query("group")) > 0 {
		group, err := GetGroup(c.Query("group"))
		if err != nil {
			return tx, fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		tx = FilterPostWithGroup(tx, group)
	}

	if len(c.Query("author")) > 0 {
		author, err := GetAccountWithName(c.Query("author"))
		if err != nil {
			return tx, fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		tx = FilterPostWithAuthor(tx, author)
	}

	return tx, nil
}
