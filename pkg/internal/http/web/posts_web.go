package web

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type postForm struct {
	Text  string `form:"text" validate:"required"`
	Group string `form:"group"`
}

func postURL(id uint) string {
	return fmt.Sprintf("/posts/%d/", id)
}

func profileURL(user models.User) string {
	return "/profile/" + url.PathEscape(user.Name) + "/"
}

func listPost(c *fiber.Ctx) error {
	page, err := services.PaginatePost(database.C, c.Query("page"))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	return render(c, "posts/index", fiber.Map{
		"Title": "Latest updates",
		"Page":  page,
	})
}

func listGroupPost(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	page, err := services.PaginatePost(services.FilterPostWithGroup(database.C, group), c.Query("page"))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	return render(c, "posts/group_list", fiber.Map{
		"Title": fmt.Sprintf("Posts of the group %s", group.Title),
		"Group": group,
		"Page":  page,
	})
}

func listAuthorPost(c *fiber.Ctx) error {
	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	page, err := services.PaginatePost(services.FilterPostWithAuthor(database.C, author), c.Query("page"))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	return render(c, "posts/profile", fiber.Map{
		"Title":       fmt.Sprintf("Profile of %s", author.DisplayName()),
		"Author":      author,
		"PostsAmount": page.Count,
		"Page":        page,
	})
}

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	amount, err := services.CountAuthorPost(item.Author)
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	return render(c, "posts/post_detail", fiber.Map{
		"Title":       services.TruncatePostTitle(item.Text),
		"Post":        item,
		"PostsAmount": amount,
		"CanEdit":     services.CanEditPost(exts.GetCurrentUser(c), item),
	})
}

func createPost(c *fiber.Ctx) error {
	user := exts.GetCurrentUser(c)
	if !services.CanCreatePost(user) {
		return exts.RedirectToLogin(c)
	}

	if c.Method() != fiber.MethodPost {
		return renderPostForm(c, postForm{}, exts.FormErrors{}, nil)
	}

	var data postForm
	issues, err := exts.BindForm(c, &data)
	if err != nil {
		return err
	}
	group, err := resolveFormGroup(data.Group, issues)
	if err != nil {
		return err
	}
	if issues.Any() {
		return renderPostForm(c, data, issues, nil)
	}

	item, err := services.NewPost(*user, data.Text, group)
	if errors.Is(err, services.ErrEmptyPostText) {
		issues.Add("text", "This field is required.")
		return renderPostForm(c, data, issues, nil)
	} else if err != nil {
		return exts.WrapDatabaseError(err)
	}

	log.Info().Uint("post", item.ID).Str("author", user.Name).Msg("A new post has been published.")
	return c.Redirect(profileURL(*user))
}

func editPost(c *fiber.Ctx) error {
	user := exts.GetCurrentUser(c)
	if user == nil {
		return exts.RedirectToLogin(c)
	}

	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	if !services.CanEditPost(user, item) {
		return c.Redirect(postURL(item.ID))
	}

	if c.Method() != fiber.MethodPost {
		data := postForm{Text: item.Text}
		if item.Group != nil {
			data.Group = item.Group.Slug
		}
		return renderPostForm(c, data, exts.FormErrors{}, &item)
	}

	var data postForm
	issues, err := exts.BindForm(c, &data)
	if err != nil {
		return err
	}
	group, err := resolveFormGroup(data.Group, issues)
	if err != nil {
		return err
	}
	if issues.Any() {
		return renderPostForm(c, data, issues, &item)
	}

	if _, err := services.EditPost(item, data.Text, group); errors.Is(err, services.ErrEmptyPostText) {
		issues.Add("text", "This field is required.")
		return renderPostForm(c, data, issues, &item)
	} else if err != nil {
		return exts.WrapDatabaseError(err)
	}

	return c.Redirect(postURL(item.ID))
}

// resolveFormGroup looks up the submitted group by slug or numeric id, empty means no group.
// Unknown references are reported into issues, the returned error is for storage failures only.
func resolveFormGroup(ref string, issues exts.FormErrors) (*models.Group, error) {
	if len(ref) == 0 {
		return nil, nil
	}

	var group models.Group
	var err error
	if id, perr := strconv.ParseUint(ref, 10, 0); perr == nil {
		group, err = services.GetGroupWithID(uint(id))
	} else {
		group, err = services.GetGroup(ref)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		issues.Add("group", "Select a valid choice. That choice is not one of the available choices.")
		return nil, nil
	} else if err != nil {
		return nil, exts.WrapDatabaseError(err)
	}

	return &group, nil
}

func renderPostForm(c *fiber.Ctx, data postForm, issues exts.FormErrors, editing *models.Post) error {
	groups, err := services.ListGroup()
	if err != nil {
		return exts.WrapDatabaseError(err)
	}

	bind := fiber.Map{
		"Title":  "New post",
		"Form":   data,
		"Errors": issues,
		"Groups": groups,
		"IsEdit": editing != nil,
		"Action": "/create/",
	}
	if editing != nil {
		bind["Title"] = "Edit post"
		bind["PostID"] = editing.ID
		bind["Action"] = postURL(editing.ID) + "edit/"
	}

	return render(c, "posts/create_post", bind)
}
