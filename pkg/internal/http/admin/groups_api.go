package admin

import (
	"errors"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func createGroup(c *fiber.Ctx) error {
	var data struct {
		Slug        string `json:"slug" validate:"required,max=50"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.GetGroup(data.Slug); err == nil {
		return fiber.NewError(fiber.StatusConflict, "group with this slug already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	group, err := services.NewGroup(data.Slug, data.Description)
	if errors.Is(err, services.ErrUnknownGroup) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Info().Str("slug", group.Slug).Str("operator", exts.GetCurrentUser(c).Name).Msg("A group has been created.")
	return c.Status(fiber.StatusCreated).JSON(group)
}

func editGroup(c *fiber.Ctx) error {
	var data struct {
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	if group, err = services.EditGroup(group, data.Description); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(group)
}

func deleteGroup(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Info().Str("slug", group.Slug).Str("operator", exts.GetCurrentUser(c).Name).Msg("A group has been deleted.")
	return c.SendStatus(fiber.StatusOK)
}
