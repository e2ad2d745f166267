package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/HSouheill/inquiry_backend/models"
	"github.com/HSouheill/inquiry_backend/services"
)

const (
	msgOTPSent      = "OTP Sent"
	msgSaved        = "All details verified and saved to MongoDB!"
	errEmailFailed  = "Email failed"
	errInvalidOTP   = "Invalid OTP code"
	errSaveFailed   = "Error saving to database"
	errInvalidInput = "Invalid request body"
)

// InquiryController serves the inquiry form endpoints
type InquiryController struct {
	service        *services.InquiryService
	logger         *logrus.Logger
	requestTimeout time.Duration
}

// NewInquiryController creates the controller. A zero timeout lets mail and
// database calls run as long as their drivers allow.
func NewInquiryController(service *services.InquiryService, logger *logrus.Logger, requestTimeout time.Duration) *InquiryController {
	return &InquiryController{
		service:        service,
		logger:         logger,
		requestTimeout: requestTimeout,
	}
}

// SendOTP mails a fresh code to the submitted email
func (ic *InquiryController) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := ic.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errInvalidInput})
	}

	ctx, cancel := ic.requestContext(c)
	defer cancel()

	if err := ic.service.RequestCode(ctx, string(req.Email)); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: errEmailFailed})
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: msgOTPSent})
}

// VerifyAndSave checks the code and stores the inquiry
func (ic *InquiryController) VerifyAndSave(c echo.Context) error {
	var req models.VerifyAndSaveRequest
	if err := ic.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errInvalidInput})
	}

	// A non-string otp can never equal an issued code
	if !req.OTP.IsString {
		ic.logger.WithField("path", c.Path()).Info("Non-string OTP submitted")
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errInvalidOTP})
	}

	ctx, cancel := ic.requestContext(c)
	defer cancel()

	_, err := ic.service.VerifyAndStore(ctx, string(req.Email), req.OTP.Code, req.Fields())
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, models.MessageResponse{Message: msgSaved})
	case errors.Is(err, services.ErrInvalidOTP):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errInvalidOTP})
	default:
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: errSaveFailed})
	}
}

func (ic *InquiryController) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		ic.logger.WithError(err).WithField("path", c.Path()).Debug("Failed to bind request")
		return err
	}
	return nil
}

func (ic *InquiryController) requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request().Context()
	if ic.requestTimeout > 0 {
		return context.WithTimeout(ctx, ic.requestTimeout)
	}
	return context.WithCancel(ctx)
}
