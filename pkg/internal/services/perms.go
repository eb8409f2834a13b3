package services

import "git.solsynth.dev/hypernet/yatube/pkg/internal/models"

// Authorization is enforced by the callers, none of the repository functions check it.

func CanCreatePost(user *models.User) bool {
	return user != nil
}

func CanEditPost(user *models.User, post models.Post) bool {
	return user != nil && user.ID == post.AuthorID
}
