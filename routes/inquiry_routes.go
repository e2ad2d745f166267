package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/inquiry_backend/controllers"
)

// RegisterInquiryRoutes sets up the public inquiry form routes
func RegisterInquiryRoutes(e *echo.Echo, inquiryController *controllers.InquiryController) {
	api := e.Group("/api")
	api.POST("/send-otp", inquiryController.SendOTP)
	api.POST("/verify-and-save", inquiryController.VerifyAndSave)
}
