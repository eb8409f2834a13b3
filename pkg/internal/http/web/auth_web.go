package web

import (
	"errors"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type signupForm struct {
	Name            string `form:"username" validate:"required,max=150"`
	Nick            string `form:"nick" validate:"max=150"`
	Email           string `form:"email" validate:"omitempty,email"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}

type loginForm struct {
	Name     string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

func signup(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return render(c, "users/signup", fiber.Map{
			"Title":  "Sign up",
			"Form":   signupForm{},
			"Errors": exts.FormErrors{},
		})
	}

	var data signupForm
	issues, err := exts.BindForm(c, &data)
	if err != nil {
		return err
	}

	if !issues.Any() {
		_, err := services.NewAccount(data.Name, data.Nick, data.Email, data.Password)
		switch {
		case errors.Is(err, services.ErrAccountExists), errors.Is(err, services.ErrInvalidAccountName):
			issues.Add("username", err.Error())
		case err != nil:
			return exts.WrapDatabaseError(err)
		default:
			return c.Redirect("/")
		}
	}

	data.Password, data.PasswordConfirm = "", ""
	return render(c, "users/signup", fiber.Map{
		"Title":  "Sign up",
		"Form":   data,
		"Errors": issues,
	})
}

func login(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return render(c, "users/login", fiber.Map{
			"Title":  "Log in",
			"Form":   loginForm{Next: c.Query("next")},
			"Errors": exts.FormErrors{},
		})
	}

	var data loginForm
	issues, err := exts.BindForm(c, &data)
	if err != nil {
		return err
	}

	if !issues.Any() {
		user, err := services.AuthenticateAccount(data.Name, data.Password)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			issues.Add("form", "Please enter a correct username and password.")
		case err != nil:
			return exts.WrapDatabaseError(err)
		default:
			if err := exts.SignIn(c, user); err != nil {
				log.Error().Err(err).Msg("An error occurred when saving session...")
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			if exts.IsSafeRedirect(data.Next) {
				return c.Redirect(data.Next)
			}
			return c.Redirect("/")
		}
	}

	data.Password = ""
	return render(c, "users/login", fiber.Map{
		"Title":  "Log in",
		"Form":   data,
		"Errors": issues,
	})
}

func logout(c *fiber.Ctx) error {
	if err := exts.SignOut(c); err != nil {
		log.Warn().Err(err).Msg("An error occurred when destroying session...")
	}

	return render(c, "users/logged_out", fiber.Map{
		"Title": "Logged out",
		"User":  nil,
	})
}
