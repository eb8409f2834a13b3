package http

import (
	"errors"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/admin"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/api"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/web"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type HTTPApp struct {
	app *fiber.App
}

func NewServer() *HTTPApp {
	exts.NewSessionStore()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Yatube",
		AppName:               "Yatube",
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		BodyLimit:             4 * 1024 * 1024,
		Views:                 web.NewViewEngine(),
		ErrorHandler:          handleError,
	})

	app.Use(recover.New())
	app.Use(requestLogger)
	app.Use(exts.ContextMiddleware)

	api.MapControllers(app, "/api")
	admin.MapControllers(app, "/admin")
	web.MapControllers(app)

	return &HTTPApp{app}
}

// App exposes the underlying fiber app, mostly for feeding requests in tests.
func (v *HTTPApp) App() *fiber.App {
	return v.app
}

func (v *HTTPApp) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}

func (v *HTTPApp) Shutdown() error {
	return v.app.ShutdownWithTimeout(5 * time.Second)
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	log.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("took", time.Since(start)).
		Msg("Handled a request.")

	return err
}

// handleError renders the error page for site routes and a plain message for the api ones.
func handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
	}

	c.Status(code)
	if strings.HasPrefix(c.Path(), "/api") || strings.HasPrefix(c.Path(), "/admin") {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(message)
	}

	if rerr := c.Render("errors/error", fiber.Map{
		"Title":   utils.StatusMessage(code),
		"Code":    code,
		"Message": message,
	}, "layouts/main"); rerr != nil {
		return c.SendString(message)
	}
	return nil
}
