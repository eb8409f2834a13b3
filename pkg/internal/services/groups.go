package services

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

var ErrUnknownGroup = errors.New("group slug is not part of the catalog")

type GroupSeedConfig struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func ListGroup() ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Order("title ASC").Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("slug = ?", slug).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("id = ?", id).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

// NewGroup creates a group for one of the catalog slugs.
// The title is always taken from the catalog entry.
func NewGroup(slug, description string) (models.Group, error) {
	kind, ok := models.LookupGroupKind(slug)
	if !ok {
		return models.Group{}, ErrUnknownGroup
	}

	group := models.Group{
		Title:       kind.Title,
		Slug:        kind.Slug,
		Description: description,
	}

	err := database.C.Create(&group).Error

	return group, err
}

func EditGroup(group models.Group, description string) (models.Group, error) {
	group.Description = description

	err := database.C.Model(&group).Update("description", description).Error

	return group, err
}

// DeleteGroup removes the group and detaches its posts, the posts themselves stay.
func DeleteGroup(group models.Group) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}

// SeedGroups creates the groups listed in settings which do not exist yet.
func SeedGroups() error {
	var seeds []GroupSeedConfig
	if err := viper.UnmarshalKey("groups", &seeds); err != nil {
		return fmt.Errorf("unable to read group seeds: %v", err)
	}

	var created int
	for _, seed := range seeds {
		if _, err := GetGroup(seed.Slug); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := NewGroup(seed.Slug, seed.Description); err != nil {
			return fmt.Errorf("unable to seed group %s: %w", seed.Slug, err)
		}
		created++
	}

	log.Info().Int("configured", len(seeds)).Int("created", created).Msg("Group catalog is ready.")
	return nil
}
