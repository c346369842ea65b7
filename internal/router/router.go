package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"avatarhub/internal/handler"
	appmiddleware "avatarhub/internal/middleware"
	"avatarhub/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *session.Registry,
	maxUploadBytes int64,
	dashboardHandler *handler.DashboardHandler,
	avatarHandler *handler.AvatarHandler,
) {
	e.Use(appmiddleware.RequestLogger())
	e.Use(middleware.Recover())
	// Multipart overhead on top of the largest accepted image.
	e.Use(middleware.BodyLimit(bodyLimit(maxUploadBytes)))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/placeholder.svg", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "image/svg+xml", placeholderSVG)
	})
	e.GET("/images/:id", avatarHandler.ServeImage)

	ui := e.Group("", session.Middleware(sessions))
	ui.GET("/", dashboardHandler.Show)
	ui.POST("/page", dashboardHandler.GoToPage)
	ui.POST("/sort", dashboardHandler.SetSort)
	ui.POST("/avatars/new", dashboardHandler.OpenCreate)
	ui.POST("/avatars/cancel", dashboardHandler.CancelCreate)
	ui.POST("/avatars", dashboardHandler.SubmitCreate)
	ui.POST("/avatars/:id/edit", dashboardHandler.OpenEdit)
	ui.POST("/avatars/:id/cancel", dashboardHandler.CancelEdit)
	ui.POST("/avatars/:id", dashboardHandler.SubmitEdit)

	api := e.Group("/api", session.Middleware(sessions))
	api.GET("/avatars", avatarHandler.ListAvatars)
	api.POST("/page", avatarHandler.GoToPage)
	api.POST("/sort", avatarHandler.SetSort)
	api.GET("/avatars/:id", avatarHandler.GetAvatar)
	api.POST("/avatars", avatarHandler.CreateAvatar)
	api.PUT("/avatars/:id", avatarHandler.UpdateAvatar)
	api.POST("/images", avatarHandler.UploadImage)
}

func bodyLimit(maxUploadBytes int64) string {
	const overhead = 1 << 20
	return formatBytes(maxUploadBytes + overhead)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var placeholderSVG = []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="400" viewBox="0 0 400 400"><rect width="400" height="400" fill="#e5e7eb"/><circle cx="200" cy="160" r="70" fill="#9ca3af"/><rect x="90" y="250" width="220" height="110" rx="55" fill="#9ca3af"/></svg>`)
