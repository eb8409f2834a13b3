package services

import (
	"errors"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultPostOrder is newest first, higher id wins a tie.
const DefaultPostOrder = "pub_date DESC, id DESC"

var ErrEmptyPostText = errors.New("post text cannot be empty")

func FilterPostWithGroup(tx *gorm.DB, group models.Group) *gorm.DB {
	return tx.Where("group_id = ?", group.ID)
}

func FilterPostWithAuthor(tx *gorm.DB, author models.User) *gorm.DB {
	return tx.Where("author_id = ?", author.ID)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func CountAuthorPost(author models.User) (int64, error) {
	return CountPost(FilterPostWithAuthor(database.C, author))
}

func ListPost(tx *gorm.DB, take int, offset int) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	if take >= 0 {
		tx = tx.Limit(take)
	}
	if offset >= 0 {
		tx = tx.Offset(offset)
	}

	var items []models.Post
	if err := PreloadGeneral(tx).
		Order(DefaultPostOrder).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewPost(author models.User, text string, group *models.Group) (models.Post, error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return models.Post{}, ErrEmptyPostText
	}

	item := models.Post{
		Text:     text,
		PubDate:  time.Now(),
		AuthorID: author.ID,
	}
	if group != nil {
		item.GroupID = &group.ID
	}

	log.Debug().Uint("author", author.ID).Msg("Saving post record into database...")
	if err := database.C.Omit(clause.Associations).Create(&item).Error; err != nil {
		return item, err
	}

	item.Author = author
	item.Group = group

	return item, nil
}

// EditPost overwrites the text and the group, the author and the pub date stay untouched.
func EditPost(item models.Post, text string, group *models.Group) (models.Post, error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return item, ErrEmptyPostText
	}

	groupID := lo.TernaryF(group != nil, func() *uint {
		return &group.ID
	}, func() *uint {
		return nil
	})

	values := map[string]any{"text": text, "group_id": nil}
	if groupID != nil {
		values["group_id"] = *groupID
	}
	if err := database.C.Model(&models.Post{ID: item.ID}).Updates(values).Error; err != nil {
		return item, err
	}

	item.Text = text
	item.GroupID = groupID
	item.Group = group

	return item, nil
}

const TruncatePostTitleThreshold = 29

// TruncatePostTitle cuts the text down to a page title.
func TruncatePostTitle(text string) string {
	runes := []rune(text)
	if len(runes) > TruncatePostTitleThreshold {
		return string(runes[:TruncatePostTitleThreshold])
	}
	return text
}

const TruncatePostContentThreshold = 160

func TruncatePostContent(post models.Post) models.Post {
	if len([]rune(post.Text)) >= TruncatePostContentThreshold {
		post.Text = string([]rune(post.Text)[:TruncatePostContentThreshold]) + "..."
	}

	return post
}
