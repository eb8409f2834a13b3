package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountExists      = errors.New("a user with that username already exists")
	ErrInvalidAccountName = errors.New("enter a valid username, only letters, digits and @/./+/-/_ are allowed")
)

var accountNamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

func GetAccountWithID(id uint) (models.User, error) {
	var account models.User
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithName(name string) (models.User, error) {
	var account models.User
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func NewAccount(name, nick, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	if len(name) > 150 || !accountNamePattern.MatchString(name) {
		return models.User{}, ErrInvalidAccountName
	}

	var count int64
	if err := database.C.
		Model(&models.User{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return models.User{}, fmt.Errorf("unable to count exsisting user: %v", err)
	}
	if count > 0 {
		return models.User{}, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("unable to hash password: %v", err)
	}

	account := models.User{
		Name:     name,
		Nick:     strings.TrimSpace(nick),
		Email:    strings.TrimSpace(email),
		Password: string(hash),
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}

	log.Info().Uint("id", account.ID).Str("name", account.Name).Msg("A new user has signed up.")
	return account, nil
}

// AuthenticateAccount checks the password of the named user.
func AuthenticateAccount(name, password string) (models.User, error) {
	account, err := GetAccountWithName(strings.TrimSpace(name))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return account, ErrInvalidCredentials
	} else if err != nil {
		return account, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return account, ErrInvalidCredentials
	}
	return account, nil
}

// IsAdministrator reports whether the user is listed in security.administrators.
func IsAdministrator(user models.User) bool {
	return lo.Contains(viper.GetStringSlice("security.administrators"), user.Name)
}
