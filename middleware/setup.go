package middleware

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/HSouheill/inquiry_backend/config"
)

// Setup installs the global middleware chain. The request logger wraps
// Recover so requests that panic still get an access line with status 500.
func Setup(e *echo.Echo, logger *logrus.Logger, cfg config.ServerConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(GlobalCORS(cfg.AllowedOrigins))
	e.Use(SecurityHeaders())
	e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
}
