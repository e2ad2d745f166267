package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/inquiry_backend/controllers"
)

// SetupRoutes configures all routes by calling the individual registration functions
func SetupRoutes(e *echo.Echo, inquiryController *controllers.InquiryController, healthController *controllers.HealthController) {
	RegisterHealthRoutes(e, healthController)
	RegisterInquiryRoutes(e, inquiryController)
}

// RegisterHealthRoutes sets up the liveness endpoints
func RegisterHealthRoutes(e *echo.Echo, healthController *controllers.HealthController) {
	e.Match([]string{"GET", "HEAD"}, "/", healthController.Root)
	e.Match([]string{"GET", "HEAD"}, "/health", healthController.Health)
}
