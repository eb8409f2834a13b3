package exts

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// WrapDatabaseError turns a missing record into 404 and anything else into 500.
func WrapDatabaseError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.ErrNotFound
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
