package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HSouheill/inquiry_backend/config"
	"github.com/HSouheill/inquiry_backend/models"
)

type HealthController struct {
	DB       *mongo.Client
	OTPStore string
}

func NewHealthController(db *mongo.Client, otpStore string) *HealthController {
	return &HealthController{DB: db, OTPStore: otpStore}
}

func (hc *HealthController) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "OK",
		Message: "Inquiry backend is running",
	})
}

// Health reports whether MongoDB answers a ping
func (hc *HealthController) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := config.PingDB(ctx, hc.DB); err != nil {
		return c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
			Status:   "degraded",
			Database: "disconnected",
			OTPStore: hc.OTPStore,
		})
	}

	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "healthy",
		Database: "connected",
		OTPStore: hc.OTPStore,
	})
}
