package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HSouheill/inquiry_backend/models"
	"github.com/HSouheill/inquiry_backend/repositories"
	"github.com/HSouheill/inquiry_backend/utils"
)

const (
	otpSubject  = "Your Verification Code"
	otpBodyText = "Your OTP is %s"
)

var (
	// ErrEmailFailed means the code could not be delivered
	ErrEmailFailed = errors.New("email failed")
	// ErrInvalidOTP means the submitted code does not match the outstanding one
	ErrInvalidOTP = errors.New("invalid otp code")
	// ErrSaveFailed means the inquiry could not be persisted
	ErrSaveFailed = errors.New("error saving inquiry")
)

// InquiryService runs the two steps of the inquiry form: mailing a code to the
// submitter and storing the inquiry once that code comes back.
type InquiryService struct {
	otps      repositories.OTPStore
	mailer    Mailer
	inquiries repositories.InquiryStore
	logger    *logrus.Logger
	now       func() time.Time
}

func NewInquiryService(otps repositories.OTPStore, mailer Mailer, inquiries repositories.InquiryStore, logger *logrus.Logger) *InquiryService {
	return &InquiryService{
		otps:      otps,
		mailer:    mailer,
		inquiries: inquiries,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the time source used to stamp inquiries
func (s *InquiryService) WithClock(now func() time.Time) *InquiryService {
	s.now = now
	return s
}

// RequestCode issues a fresh code for email and mails it. If delivery fails
// the code stays stored and can still be used.
func (s *InquiryService) RequestCode(ctx context.Context, email string) error {
	log := s.logger.WithField("email", utils.MaskEmail(email))

	code, err := s.otps.Issue(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to issue OTP")
		return fmt.Errorf("%w: %v", ErrEmailFailed, err)
	}

	if err := s.mailer.SendMail(ctx, email, otpSubject, fmt.Sprintf(otpBodyText, code)); err != nil {
		log.WithError(err).Error("Failed to send OTP email")
		return fmt.Errorf("%w: %v", ErrEmailFailed, err)
	}

	log.Info("OTP sent")
	return nil
}

// VerifyAndStore saves the inquiry if otp matches the outstanding code for
// email. The code is consumed only after the inquiry has been saved, so a
// failed save can be retried with the same code.
func (s *InquiryService) VerifyAndStore(ctx context.Context, email, otp string, fields models.InquiryFields) (*models.Inquiry, error) {
	log := s.logger.WithField("email", utils.MaskEmail(email))

	ok, err := s.otps.Verify(ctx, email, otp)
	if err != nil {
		log.WithError(err).Error("Failed to read OTP")
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	if !ok {
		log.Info("Invalid OTP submitted")
		return nil, ErrInvalidOTP
	}

	inquiry := models.NewInquiry(email, fields, s.now())
	if err := s.inquiries.Save(ctx, inquiry); err != nil {
		log.WithError(err).Error("Database save error")
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if err := s.otps.Consume(ctx, email); err != nil {
		// The inquiry is already stored; a leftover code only allows a duplicate.
		log.WithError(err).Warn("Failed to consume OTP")
	}

	log.WithField("inquiryId", inquiry.ID.Hex()).Info("Inquiry saved")
	return inquiry, nil
}
